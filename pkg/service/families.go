package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/store"
)

const resourceFamily = "family"

// FamilyService implements domain.Families. A family is only visible to the
// user recorded as its owner.
type FamilyService struct {
	Store domain.RecordStore
	Table string
	LogFn domain.LogFn
	IDFn  func() string
	NowFn func() time.Time
}

func (s *FamilyService) env() base {
	return base{LogFn: s.LogFn, IDFn: s.IDFn, NowFn: s.NowFn}
}

func (s *FamilyService) member(in domain.MemberInput) domain.FamilyMember {
	return domain.FamilyMember{
		ID:           s.env().newID(),
		Name:         in.Name,
		Relationship: in.Relationship,
		Age:          in.Age,
		Email:        in.Email,
		Phone:        in.Phone,
	}
}

func (s *FamilyService) members(in []domain.MemberInput) []domain.FamilyMember {
	out := make([]domain.FamilyMember, 0, len(in))
	for _, m := range in {
		out = append(out, s.member(m))
	}
	return out
}

// CreateFamily stores a new family owned by ownerID. The family and every
// member get fresh ids.
func (s *FamilyService) CreateFamily(ctx context.Context, ownerID string, req domain.CreateFamilyRequest) (domain.Family, error) {
	b := s.env()
	now := b.timestamp()
	family := domain.Family{
		ID:        b.newID(),
		UserID:    ownerID,
		Name:      req.Name,
		Members:   s.members(req.Members),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		family.Description = *req.Description
	}
	if err := s.Store.Put(ctx, s.Table, family); err != nil {
		return domain.Family{}, fmt.Errorf("create family: %w", err)
	}
	b.logFn()(ctx).Info(logFamilyChanged{FamilyID: family.ID, Action: "create"})
	return family, nil
}

// ListFamilies returns every family owned by ownerID.
func (s *FamilyService) ListFamilies(ctx context.Context, ownerID string) ([]domain.Family, error) {
	var families []domain.Family
	err := s.Store.Query(ctx, s.Table, store.UserIDIndex, domain.Condition{Attribute: "userId", Value: ownerID}, &families)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	if families == nil {
		families = []domain.Family{}
	}
	return families, nil
}

// GetFamilyByID loads a family and hides it from anyone but the owner.
func (s *FamilyService) GetFamilyByID(ctx context.Context, id string, ownerID string) (domain.Family, error) {
	var family domain.Family
	found, err := s.Store.Get(ctx, s.Table, domain.Key{"id": id}, &family)
	if err != nil {
		return domain.Family{}, fmt.Errorf("get family: %w", err)
	}
	if !found {
		return domain.Family{}, domain.NotFoundError{Resource: resourceFamily, ID: id}
	}
	if family.UserID != ownerID {
		s.env().logFn()(ctx).Warn(logFamilyAccessDenied{FamilyID: id, OwnerID: family.UserID, CallerID: ownerID})
		return domain.Family{}, domain.NotFoundError{Resource: resourceFamily, ID: id}
	}
	return family, nil
}

// UpdateFamily applies the present fields of req. A member list replaces the
// existing one and its members get fresh ids.
func (s *FamilyService) UpdateFamily(ctx context.Context, id string, ownerID string, req domain.UpdateFamilyRequest) (domain.Family, error) {
	if _, err := s.GetFamilyByID(ctx, id, ownerID); err != nil {
		return domain.Family{}, err
	}
	var set []domain.Assignment
	if req.Name != nil {
		set = append(set, domain.Assignment{Field: "name", Value: *req.Name})
	}
	if req.Description != nil {
		set = append(set, domain.Assignment{Field: "description", Value: *req.Description})
	}
	if req.Members != nil {
		set = append(set, domain.Assignment{Field: "members", Value: s.members(req.Members)})
	}
	return s.save(ctx, id, ownerID, "update", set)
}

// DeleteFamily removes a family owned by ownerID.
func (s *FamilyService) DeleteFamily(ctx context.Context, id string, ownerID string) error {
	if _, err := s.GetFamilyByID(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, s.Table, domain.Key{"id": id}); err != nil {
		return fmt.Errorf("delete family: %w", err)
	}
	s.env().logFn()(ctx).Info(logFamilyChanged{FamilyID: id, Action: "delete"})
	return nil
}

// AddFamilyMember appends a member with a fresh id.
func (s *FamilyService) AddFamilyMember(ctx context.Context, id string, ownerID string, member domain.MemberInput) (domain.Family, error) {
	family, err := s.GetFamilyByID(ctx, id, ownerID)
	if err != nil {
		return domain.Family{}, err
	}
	members := make([]domain.FamilyMember, 0, len(family.Members)+1)
	members = append(members, family.Members...)
	members = append(members, s.member(member))
	return s.save(ctx, id, ownerID, "add-member", []domain.Assignment{{Field: "members", Value: members}})
}

// RemoveFamilyMember drops the member with memberID. An unknown member id
// leaves the family untouched.
func (s *FamilyService) RemoveFamilyMember(ctx context.Context, id string, ownerID string, memberID string) (domain.Family, error) {
	family, err := s.GetFamilyByID(ctx, id, ownerID)
	if err != nil {
		return domain.Family{}, err
	}
	members := make([]domain.FamilyMember, 0, len(family.Members))
	for _, m := range family.Members {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	if len(members) == len(family.Members) {
		return family, nil
	}
	return s.save(ctx, id, ownerID, "remove-member", []domain.Assignment{{Field: "members", Value: members}})
}

// save stamps updatedAt onto the assignments, writes them and re-reads the
// family.
func (s *FamilyService) save(ctx context.Context, id string, ownerID string, action string, set []domain.Assignment) (domain.Family, error) {
	b := s.env()
	set = append(set, domain.Assignment{Field: "updatedAt", Value: b.timestamp()})
	if err := s.Store.Update(ctx, s.Table, domain.Key{"id": id}, set); err != nil {
		return domain.Family{}, fmt.Errorf("%s family: %w", action, err)
	}
	b.logFn()(ctx).Info(logFamilyChanged{FamilyID: id, Action: action})
	return s.GetFamilyByID(ctx, id, ownerID)
}
