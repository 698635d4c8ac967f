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

type TaskHandler struct {
	svc        *service.TaskService
	log        *zap.Logger
	production bool
}

func NewTaskHandler(svc *service.TaskService, l *zap.Logger, production bool) *TaskHandler {
	return &TaskHandler{svc: svc, log: l, production: production}
}

func (h *TaskHandler) Priority() int { return 20 }

type taskUpdate struct {
	ID    uint64
	Patch domain.TaskPatch
}

type userTasksQuery struct {
	UserID uint64
	Query  domain.ListQuery
}

func pageReply(p *domain.TaskPage, err error) (ez.Reply, error) {
	if err != nil {
		return ez.Reply{}, err
	}
	return ez.Reply{Data: p.Tasks, Pagination: &p.Meta}, nil
}

// MountAPI registers /tasks under g.
func (h *TaskHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/tasks"), h.log, h.production)

	ez.RegisterAction(e, ez.Action[domain.TaskInput]{
		Method:  http.MethodPost,
		Path:    "",
		Status:  http.StatusCreated,
		Message: "Task created successfully",
		Failure: "Internal server error while creating task",
		Bind: func(c *gin.Context) (domain.TaskInput, error) {
			return bindBody(c, validation.Task)
		},
		Handler: func(ctx context.Context, in domain.TaskInput) (ez.Reply, error) {
			t, err := h.svc.Create(ctx, in)
			return ez.Reply{Data: t}, err
		},
	})

	ez.RegisterAction(e, ez.Action[domain.ListQuery]{
		Method:  http.MethodGet,
		Path:    "",
		Message: "Tasks retrieved successfully",
		Failure: "Internal server error while fetching tasks",
		Bind:    bindListQuery,
		Handler: func(ctx context.Context, q domain.ListQuery) (ez.Reply, error) {
			return pageReply(h.svc.List(ctx, q))
		},
	})

	ez.RegisterAction(e, ez.Action[uint64]{
		Method:  http.MethodGet,
		Path:    "/:id",
		Message: "Task retrieved successfully",
		Failure: "Internal server error while fetching task",
		Bind:    bindTaskID,
		Handler: func(ctx context.Context, id uint64) (ez.Reply, error) {
			t, err := h.svc.Get(ctx, id)
			return ez.Reply{Data: t}, err
		},
	})

	ez.RegisterAction(e, ez.Action[taskUpdate]{
		Method:  http.MethodPut,
		Path:    "/:id",
		Message: "Task updated successfully",
		Failure: "Internal server error while updating task",
		Bind: func(c *gin.Context) (taskUpdate, error) {
			id, err := bindTaskID(c)
			if err != nil {
				return taskUpdate{}, err
			}
			p, err := bindBody(c, validation.TaskUpdate)
			return taskUpdate{ID: id, Patch: p}, err
		},
		Handler: func(ctx context.Context, in taskUpdate) (ez.Reply, error) {
			t, err := h.svc.Update(ctx, in.ID, in.Patch)
			return ez.Reply{Data: t}, err // nil t renders as "data": null
		},
	})

	ez.RegisterAction(e, ez.Action[uint64]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Message: "Task deleted successfully",
		Failure: "Internal server error while deleting task",
		Bind:    bindTaskID,
		Handler: func(ctx context.Context, id uint64) (ez.Reply, error) {
			return ez.Reply{}, h.svc.Delete(ctx, id)
		},
	})

	// path and query are both checked before the owner lookup
	ez.RegisterAction(e, ez.Action[userTasksQuery]{
		Method:  http.MethodGet,
		Path:    "/user/:userId",
		Message: "User tasks retrieved successfully",
		Failure: "Internal server error while fetching user tasks",
		Bind: func(c *gin.Context) (userTasksQuery, error) {
			uid, err := bindID(c, "userId", resp.MsgInvalidUserID)
			if err != nil {
				return userTasksQuery{}, err
			}
			q, err := bindListQuery(c)
			return userTasksQuery{UserID: uid, Query: q}, err
		},
		Handler: func(ctx context.Context, in userTasksQuery) (ez.Reply, error) {
			return pageReply(h.svc.ListByUser(ctx, in.UserID, in.Query))
		},
	})
}

func bindTaskID(c *gin.Context) (uint64, error) { return bindID(c, "id", resp.MsgInvalidID) }
