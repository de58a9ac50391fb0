package spacetalk

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/spacetalk/lambda-spacetalk/pkg/config"
	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
	v1 "github.com/spacetalk/lambda-spacetalk/pkg/handlers/v1"
	"github.com/spacetalk/lambda-spacetalk/pkg/identity"
	"github.com/spacetalk/lambda-spacetalk/pkg/service"
	"github.com/spacetalk/lambda-spacetalk/pkg/store"
	"github.com/spacetalk/lambda-spacetalk/pkg/validation"
)

// Functions builds every API function against DynamoDB and Cognito using the
// AWS configuration of the environment.
func Functions(env *config.Environment) map[string]domain.Handler {
	return NewFunctions(
		env,
		store.NewFromConfig(env.AWS),
		identity.NewFromConfig(env.AWS, env.Cognito.UserPoolID, env.Cognito.ClientID),
	)
}

// NewFunctions builds every API function on top of the given collaborators.
// The keys of the returned map are the function names.
func NewFunctions(env *config.Environment, records domain.RecordStore, idp domain.IdentityProvider) map[string]domain.Handler {
	tables := service.NewTables(env.DynamoDB.TablePrefix)
	validator := validation.New()
	conf := v1.Config{Local: env.App.IsLocal()}

	families := &service.FamilyService{Store: records, Table: tables.Families}
	auth := &v1.Auth{
		Users: &service.UserService{
			Store:    records,
			Identity: idp,
			Table:    tables.Users,
		},
		Validator: validator,
		Config:    conf,
	}
	family := &v1.Family{
		Families:  families,
		Validator: validator,
		Config:    conf,
	}
	route := &v1.Route{
		Routes:   &service.RouteService{Store: records, Table: tables.Routes},
		Families: families,
		Config:   conf,
	}
	return map[string]domain.Handler{
		domain.FunctionAuth:   lambda.NewHandler(auth.Handle),
		domain.FunctionFamily: lambda.NewHandler(family.Handle),
		domain.FunctionRoute:  lambda.NewHandler(route.Handle),
	}
}
