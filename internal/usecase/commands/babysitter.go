package commands

import (
	"context"

	"hisitter/internal/domain/user"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/shared"
)

var ErrBabysittersOnly = errs.Mark(errs.New("only babysitters can manage a schedule"), errs.ErrPermissionDenied)

type BabysitterCommands interface {
	UpdateSchedule(ctx context.Context, actor user.Actor, slots []SlotInput) error
}

type babysitterUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBabysitterUseCase(uow shared.UnitOfWork) BabysitterCommands {
	return &babysitterUseCaseImpl{uow: uow}
}

// UpdateSchedule replaces the whole weekly availability in one shot.
func (uc *babysitterUseCaseImpl) UpdateSchedule(ctx context.Context, actor user.Actor, slots []SlotInput) error {
	if !actor.IsBabysitter() {
		return ErrBabysittersOnly
	}

	schedule, err := buildSchedule(slots)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Babysitters().ReplaceSchedule(ctx, tx.DB(), actor.ID, schedule)
	})
}
