package handler

import (
	"github.com/gin-gonic/gin"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/transport/http/ez"
	resp "task-manager-api/internal/transport/http/response"
	"task-manager-api/internal/validation"
)

func bindID(c *gin.Context, param, msg string) (uint64, error) {
	id, errs := validation.ID(c.Param(param))
	if len(errs) > 0 {
		return 0, domain.BadRequest(msg)
	}
	return id, nil
}

func bindListQuery(c *gin.Context) (domain.ListQuery, error) {
	q, errs := validation.ListQuery(c.Request.URL.Query())
	if len(errs) > 0 {
		return domain.ListQuery{}, domain.Validation(resp.MsgInvalidQuery, errs)
	}
	return q, nil
}

// bindBody decodes the JSON object and runs check over it.
func bindBody[T any](c *gin.Context, check func(map[string]any) (T, validation.Errors)) (T, error) {
	var zero T
	raw, err := ez.BindJSONObject(c)
	if err != nil {
		return zero, err
	}
	v, errs := check(raw)
	if len(errs) > 0 {
		return zero, domain.Validation(resp.MsgValidationFailed, errs)
	}
	return v, nil
}
