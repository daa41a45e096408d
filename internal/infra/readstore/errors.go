package readstore

import (
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"
)

func classify(notFound, failed string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(notFound, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failed, err)
}
