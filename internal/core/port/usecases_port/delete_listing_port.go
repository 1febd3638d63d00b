package usecases_port

import "context"

type DeleteListingUseCase interface {
	Execute(ctx context.Context, id int64, adminToken string) error
}
