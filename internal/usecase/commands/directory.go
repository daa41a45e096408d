package commands

import (
	"context"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/material"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateLocationInput struct {
	Name     string
	Capacity int
	Type     string
}

type UpdateLocationInput struct {
	Name     *string
	Capacity *int
	Type     *string
}

type CreateMaterialInput struct {
	Name        string
	Description string
	Quantity    int
}

type UpdateMaterialInput struct {
	Name        *string
	Description *string
}

// DirectoryCommands administers the locations and materials that
// reservations refer to. Every operation requires a privileged actor.
type DirectoryCommands interface {
	CreateLocation(ctx context.Context, actor user.Actor, in CreateLocationInput) (*location.Location, error)
	UpdateLocation(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateLocationInput) (*location.Location, error)
	CreateMaterial(ctx context.Context, actor user.Actor, in CreateMaterialInput) (*material.Material, error)
	UpdateMaterial(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateMaterialInput) (*material.Material, error)
	Restock(ctx context.Context, actor user.Actor, id uuid.UUID, quantity int) (*material.Material, error)
}

type directoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewDirectoryCommands(uow shared.UnitOfWork) DirectoryCommands {
	return &directoryCommandsImpl{uow: uow}
}

func requirePrivileged(actor user.Actor) error {
	if !actor.Privileged {
		return errs.Mark(errs.New("directory changes require a manager"), ErrForbidden)
	}
	return nil
}

func (d *directoryCommandsImpl) CreateLocation(ctx context.Context, actor user.Actor, in CreateLocationInput) (*location.Location, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	kind, err := location.ParseType(in.Type)
	if err != nil {
		return nil, validationError(err)
	}
	loc, err := location.NewLocation(uuid.Nil, in.Name, in.Capacity, kind)
	if err != nil {
		return nil, validationError(err)
	}

	var created *location.Location
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locations().Create(ctx, loc); err != nil {
			return storageError(err, msgLocationNotFound)
		}
		stored, err := tx.Locations().FindByID(ctx, loc.ID())
		if err != nil {
			return storageError(err, msgLocationNotFound)
		}
		created = stored
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgLocationNotFound)
	}
	return created, nil
}

func (d *directoryCommandsImpl) UpdateLocation(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateLocationInput) (*location.Location, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	var kind *location.Type
	if in.Type != nil {
		k, err := location.ParseType(*in.Type)
		if err != nil {
			return nil, validationError(err)
		}
		kind = &k
	}

	var updated *location.Location
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Locations().Lock(ctx, id)
		if err != nil {
			return storageError(err, msgLocationNotFound)
		}
		if err := loc.Update(in.Name, in.Capacity, kind); err != nil {
			return validationError(err)
		}
		if err := tx.Locations().Update(ctx, loc); err != nil {
			return storageError(err, msgLocationNotFound)
		}
		updated, err = tx.Locations().FindByID(ctx, id)
		if err != nil {
			return storageError(err, msgLocationNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgLocationNotFound)
	}
	return updated, nil
}

func (d *directoryCommandsImpl) CreateMaterial(ctx context.Context, actor user.Actor, in CreateMaterialInput) (*material.Material, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	m, err := material.NewMaterial(uuid.Nil, in.Name, in.Description, in.Quantity)
	if err != nil {
		return nil, validationError(err)
	}

	var created *material.Material
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Materials().Create(ctx, m); err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		stored, err := tx.Materials().FindByID(ctx, m.ID())
		if err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		created = stored
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgMaterialNotFound)
	}
	return created, nil
}

func (d *directoryCommandsImpl) UpdateMaterial(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateMaterialInput) (*material.Material, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}

	var updated *material.Material
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Materials().FindByID(ctx, id)
		if err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		if err := m.Rename(in.Name, in.Description); err != nil {
			return validationError(err)
		}
		if err := tx.Materials().UpdateDetails(ctx, m); err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		updated, err = tx.Materials().FindByID(ctx, id)
		if err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgMaterialNotFound)
	}
	return updated, nil
}

// Restock books a stock intake through the ledger.
func (d *directoryCommandsImpl) Restock(ctx context.Context, actor user.Actor, id uuid.UUID, quantity int) (*material.Material, error) {
	if err := requirePrivileged(actor); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, validationError(material.ErrInvalidQuantity)
	}

	var restocked *material.Material
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ledger().Restock(ctx, id, quantity); err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		m, err := tx.Materials().FindByID(ctx, id)
		if err != nil {
			return storageError(err, msgMaterialNotFound)
		}
		restocked = m
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgMaterialNotFound)
	}
	return restocked, nil
}
