package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

func (x *UseCase) github() (interfaces.GitHub, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	return x.clients.GitHub(), nil
}

func (x *UseCase) classroom() (interfaces.ClassroomRepository, error) {
	if x.clients.Classroom() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "classroom repository is not configured")
	}
	return x.clients.Classroom(), nil
}
