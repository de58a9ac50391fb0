package v1

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	"github.com/spacetalk/lambda-spacetalk/pkg/response"
	"github.com/spacetalk/lambda-spacetalk/pkg/validation"
)

const familyNotFound = "Family not found"

type deletedResponse struct {
	Message string `json:"message"`
}

// Family serves the /family endpoints. Every endpoint requires a caller
// identity and only ever exposes families owned by that caller.
type Family struct {
	Families  domain.Families
	Validator *validation.Validator
	Config    Config
	LogFn     domain.LogFn
	StatFn    domain.StatFn
}

// Handle is the Lambda entrypoint for the family function.
func (h *Family) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	a := &api{
		Name:   domain.FunctionFamily,
		Base:   "/family",
		Config: h.Config,
		LogFn:  h.LogFn,
		StatFn: h.StatFn,
		Endpoints: sortEndpoints([]endpoint{
			{Method: http.MethodPost, Pattern: "/family", Handle: h.create},
			{Method: http.MethodGet, Pattern: "/family", Handle: h.list},
			{Method: http.MethodGet, Pattern: "/family/{id}", Handle: h.get},
			{Method: http.MethodPut, Pattern: "/family/{id}", Handle: h.update},
			{Method: http.MethodDelete, Pattern: "/family/{id}", Handle: h.delete},
			{Method: http.MethodPost, Pattern: "/family/{id}/members", Handle: h.addMember},
			{Method: http.MethodDelete, Pattern: "/family/{id}/members/{memberId}", Handle: h.removeMember},
		}),
	}
	return a.serve(ctx, req)
}

func (h *Family) create(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	m := messages{Failed: "Failed to create family"}
	var body domain.CreateFamilyRequest
	if err := h.Validator.DecodeAndValidate(r.Body, &body); err != nil {
		return r.fail("create family", err, m)
	}
	family, err := h.Families.CreateFamily(ctx, r.UserID, body)
	if err != nil {
		return r.fail("create family", err, m)
	}
	return response.Created(family)
}

func (h *Family) list(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	families, err := h.Families.ListFamilies(ctx, r.UserID)
	if err != nil {
		return r.fail("list families", err, messages{Failed: "Failed to get families"})
	}
	return response.Success(families)
}

func (h *Family) get(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	family, err := h.Families.GetFamilyByID(ctx, r.Param("id"), r.UserID)
	if err != nil {
		return r.fail("get family", err, messages{NotFound: familyNotFound, Failed: "Failed to get family"})
	}
	return response.Success(family)
}

func (h *Family) update(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	m := messages{NotFound: familyNotFound, Failed: "Failed to update family"}
	var body domain.UpdateFamilyRequest
	if err := h.Validator.DecodeAndValidate(r.Body, &body); err != nil {
		return r.fail("update family", err, m)
	}
	family, err := h.Families.UpdateFamily(ctx, r.Param("id"), r.UserID, body)
	if err != nil {
		return r.fail("update family", err, m)
	}
	return response.Success(family)
}

func (h *Family) delete(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	if err := h.Families.DeleteFamily(ctx, r.Param("id"), r.UserID); err != nil {
		return r.fail("delete family", err, messages{NotFound: familyNotFound, Failed: "Failed to delete family"})
	}
	return response.Success(deletedResponse{Message: "Family deleted successfully"})
}

func (h *Family) addMember(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	m := messages{NotFound: familyNotFound, Failed: "Failed to add member"}
	var body domain.MemberInput
	if err := h.Validator.DecodeAndValidate(r.Body, &body); err != nil {
		return r.fail("add member", err, m)
	}
	family, err := h.Families.AddFamilyMember(ctx, r.Param("id"), r.UserID, body)
	if err != nil {
		return r.fail("add member", err, m)
	}
	return response.Success(family)
}

func (h *Family) removeMember(ctx context.Context, r *request) events.APIGatewayProxyResponse {
	family, err := h.Families.RemoveFamilyMember(ctx, r.Param("id"), r.UserID, r.Param("memberId"))
	if err != nil {
		return r.fail("remove member", err, messages{NotFound: familyNotFound, Failed: "Failed to remove member"})
	}
	return response.Success(family)
}
