package domain

import (
	"context"
	"regexp"

	"github.com/fanpassport/backend/internal/model"
	"github.com/fanpassport/backend/internal/repository"
	"github.com/fanpassport/backend/pkg/authenticator"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
)

var addressRegexp = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")

type AuthDomain interface {
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewAuthDomain(
	accessTokenEngine authenticator.TokenEngine[model.AccessToken],
) AuthDomain {
	return &authDomain{accessTokenEngine: accessTokenEngine}
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	if !addressRegexp.MatchString(req.Address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address")
	}

	address := repository.NormalizeAddress(req.Address)
	token, err := d.accessTokenEngine.Generate(address, model.AccessToken{Address: address})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{AccessToken: token}, nil
}
