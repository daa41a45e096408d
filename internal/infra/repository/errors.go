package repository

import (
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"
)

// classify maps a pgx error to a repository error kind.
func classify(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.CodeForeignKeyViolation:
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	case pgconv.CodeExclusionViolation:
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
