package check

import (
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// DeletionClockSkew is the tolerance applied on both sides of the request
// window when checking deletedOn.
const DeletionClockSkew = time.Second

// ValidateDeletion checks a delete response: status 200, the deleted id,
// isDeleted true and a deletedOn timestamp inside [start, end] widened by
// DeletionClockSkew.
func ValidateDeletion(resp model.Response, id int, start, end time.Time) error {
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	if err := ValidateContract(resp.Body, SchemaDeletedProduct); err != nil {
		return err
	}

	body, err := DecodeBody[model.SingleProductResponse](resp)
	if err != nil {
		return err
	}

	if body.ID != id {
		return apperr.ValueMismatchErr.WithMsgf("deleted id is %d, want %d", body.ID, id)
	}
	if body.IsDeleted == nil || !*body.IsDeleted {
		return apperr.ValueMismatchErr.WithMsgf("product %d: isDeleted is not true", id)
	}
	if body.DeletedOn == nil {
		return apperr.MissingFieldErr.WithMsgf("product %d: deletedOn is missing", id)
	}

	deletedOn, err := time.Parse(time.RFC3339Nano, *body.DeletedOn)
	if err != nil {
		return apperr.WrongTypeErr.WithMsgf("product %d: deletedOn %q is not an ISO-8601 timestamp", id, *body.DeletedOn).WrapParent(err)
	}

	from, to := start.Add(-DeletionClockSkew), end.Add(DeletionClockSkew)
	if deletedOn.Before(from) || deletedOn.After(to) {
		return apperr.TimestampOutsideErr.WithMsgf("product %d: deletedOn %s outside [%s, %s]",
			id, deletedOn.Format(time.RFC3339Nano), from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	}

	return nil
}
