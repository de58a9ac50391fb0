package domain

import "context"

// FamilyMember is a person listed inside a Family. Member IDs are always
// generated by the service.
type FamilyMember struct {
	ID           string  `json:"id" dynamodbav:"id"`
	Name         string  `json:"name" dynamodbav:"name"`
	Relationship string  `json:"relationship" dynamodbav:"relationship"`
	Age          *int    `json:"age,omitempty" dynamodbav:"age,omitempty"`
	Email        *string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone        *string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
}

// Family is a user owned group of members. Only the owner identified by
// UserID may see or change it.
type Family struct {
	ID          string         `json:"id" dynamodbav:"id"`
	UserID      string         `json:"userId" dynamodbav:"userId"`
	Name        string         `json:"name" dynamodbav:"name"`
	Description string         `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Members     []FamilyMember `json:"members" dynamodbav:"members"`
	CreatedAt   string         `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string         `json:"updatedAt" dynamodbav:"updatedAt"`
}

// MemberInput is a family member as submitted by a client. Any client
// supplied id is ignored.
type MemberInput struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Relationship string  `json:"relationship" validate:"required,min=1,max=50"`
	Age          *int    `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// CreateFamilyRequest is the payload of POST /family.
type CreateFamilyRequest struct {
	Name        string        `json:"name" validate:"required,min=1,max=100"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=500"`
	Members     []MemberInput `json:"members" validate:"required,min=1,dive"`
}

// UpdateFamilyRequest is the payload of PUT /family/{id}. Absent fields are
// left untouched. A present member list replaces the existing one.
type UpdateFamilyRequest struct {
	Name        *string       `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=500"`
	Members     []MemberInput `json:"members,omitempty" validate:"omitempty,min=1,dive"`
}

// Families is the set of family operations consumed by the family and route
// handlers. Every method taking an ownerID reports a NotFoundError when the
// family belongs to somebody else.
type Families interface {
	CreateFamily(ctx context.Context, ownerID string, req CreateFamilyRequest) (Family, error)
	ListFamilies(ctx context.Context, ownerID string) ([]Family, error)
	GetFamilyByID(ctx context.Context, id string, ownerID string) (Family, error)
	UpdateFamily(ctx context.Context, id string, ownerID string, req UpdateFamilyRequest) (Family, error)
	DeleteFamily(ctx context.Context, id string, ownerID string) error
	AddFamilyMember(ctx context.Context, id string, ownerID string, member MemberInput) (Family, error)
	RemoveFamilyMember(ctx context.Context, id string, ownerID string, memberID string) (Family, error)
}
