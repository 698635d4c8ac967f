package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/service"
	"task-manager-api/internal/transport/http/ez"
	resp "task-manager-api/internal/transport/http/response"
	"task-manager-api/internal/validation"
)

type UserHandler struct {
	svc        *service.UserService
	log        *zap.Logger
	production bool
}

func NewUserHandler(svc *service.UserService, l *zap.Logger, production bool) *UserHandler {
	return &UserHandler{svc: svc, log: l, production: production}
}

func (h *UserHandler) Priority() int { return 10 }

type userUpdate struct {
	ID uint64
	In domain.UserInput
}

// MountAPI registers /users under g.
func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/users"), h.log, h.production)

	ez.RegisterAction(e, ez.Action[domain.UserInput]{
		Method:  http.MethodPost,
		Path:    "",
		Status:  http.StatusCreated,
		Message: "User created successfully",
		Failure: "Internal server error while creating user",
		Bind: func(c *gin.Context) (domain.UserInput, error) {
			return bindBody(c, validation.User)
		},
		Handler: func(ctx context.Context, in domain.UserInput) (ez.Reply, error) {
			u, err := h.svc.Create(ctx, in)
			return ez.Reply{Data: u}, err
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}]{
		Method:  http.MethodGet,
		Path:    "",
		Message: "Users retrieved successfully",
		Failure: "Internal server error while fetching users",
		Handler: func(ctx context.Context, _ struct{}) (ez.Reply, error) {
			users, err := h.svc.List(ctx)
			if err != nil {
				return ez.Reply{}, err
			}
			n := len(users)
			return ez.Reply{Data: users, Count: &n}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[uint64]{
		Method:  http.MethodGet,
		Path:    "/:id",
		Message: "User retrieved successfully",
		Failure: "Internal server error while fetching user",
		Bind:    bindUserID,
		Handler: func(ctx context.Context, id uint64) (ez.Reply, error) {
			u, err := h.svc.Get(ctx, id)
			return ez.Reply{Data: u}, err
		},
	})

	ez.RegisterAction(e, ez.Action[userUpdate]{
		Method:  http.MethodPut,
		Path:    "/:id",
		Message: "User updated successfully",
		Failure: "Internal server error while updating user",
		Bind: func(c *gin.Context) (userUpdate, error) {
			id, err := bindUserID(c)
			if err != nil {
				return userUpdate{}, err
			}
			in, err := bindBody(c, validation.User)
			return userUpdate{ID: id, In: in}, err
		},
		Handler: func(ctx context.Context, in userUpdate) (ez.Reply, error) {
			u, err := h.svc.Update(ctx, in.ID, in.In)
			return ez.Reply{Data: u}, err
		},
	})

	ez.RegisterAction(e, ez.Action[uint64]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Message: "User deleted successfully",
		Failure: "Internal server error while deleting user",
		Bind:    bindUserID,
		Handler: func(ctx context.Context, id uint64) (ez.Reply, error) {
			return ez.Reply{}, h.svc.Delete(ctx, id)
		},
	})
}

func bindUserID(c *gin.Context) (uint64, error) { return bindID(c, "id", resp.MsgInvalidID) }
