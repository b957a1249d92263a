package router

import (
	"context"
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"items-api/internal/config"
	"items-api/internal/models"
	"items-api/internal/repositories"
	"items-api/internal/services"
	"items-api/pkg/httpevent"
)

// Router maps inbound HTTP events onto item service operations and shapes the
// results into HTTP responses. It is stateless and safe for concurrent use.
type Router struct {
	items  services.ItemService
	cors   config.CORSConfig
	logger *logrus.Logger
}

// New creates a new request router
func New(items services.ItemService, cors config.CORSConfig, logger *logrus.Logger) *Router {
	return &Router{
		items:  items,
		cors:   cors,
		logger: logger,
	}
}

// Handle normalizes the event, classifies it into an action and dispatches.
// It never returns an error: every failure is converted to an HTTP response,
// and any panic in the dispatch path becomes the generic 500.
func (rt *Router) Handle(ctx context.Context, ev *httpevent.Event) (resp httpevent.Response) {
	defer func() {
		if r := recover(); r != nil {
			rt.logger.WithField("panic", r).Error("Unhandled panic during dispatch")
			resp = rt.message(500, "internal error")
		}
	}()

	method := resolveMethod(ev)
	path := resolvePath(ev)
	id := resolveID(ev, path)

	body, err := parseBody(ev)
	if err != nil {
		rt.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Warn("Malformed JSON body")
		return rt.message(400, "invalid JSON body")
	}

	rt.logger.WithFields(logrus.Fields{
		"method":    method,
		"path":      path,
		"id":        id,
		"body_keys": bodyKeys(body),
	}).Info("Handling request")

	switch Classify(method, id != "") {
	case ActionPreflight:
		return rt.preflight()
	case ActionList:
		return rt.handleList(ctx)
	case ActionGet:
		return rt.handleGet(ctx, id)
	case ActionCreate:
		return rt.handleCreate(ctx, body)
	case ActionUpdate:
		return rt.handleUpdate(ctx, id, body)
	case ActionDelete:
		return rt.handleDelete(ctx, id, body)
	default:
		return rt.message(405, "unsupported")
	}
}

func (rt *Router) handleList(ctx context.Context) httpevent.Response {
	records, err := rt.items.ListItems(ctx)
	if err != nil {
		return rt.storeFailure("list", err)
	}
	if records == nil {
		records = []repositories.Record{}
	}
	return rt.respond(200, records)
}

func (rt *Router) handleGet(ctx context.Context, id string) httpevent.Response {
	record, err := rt.items.GetItem(ctx, id)
	if err != nil {
		return rt.storeFailure("get", err)
	}
	// A missing item is not an error; the body is JSON null.
	return rt.respond(200, record)
}

func (rt *Router) handleCreate(ctx context.Context, body map[string]any) httpevent.Response {
	err := rt.items.CreateItem(ctx, body)
	switch {
	case err == nil:
		return rt.message(200, "created")
	case services.IsValidationError(err):
		return rt.message(400, err.Error())
	case errors.Is(err, repositories.ErrDuplicateID):
		return rt.message(409, "duplicate id")
	default:
		return rt.storeFailure("create", err)
	}
}

func (rt *Router) handleUpdate(ctx context.Context, id string, body map[string]any) httpevent.Response {
	err := rt.items.UpdateItem(ctx, id, body)
	switch {
	case err == nil:
		return rt.message(200, "updated")
	case services.IsValidationError(err):
		return rt.message(400, err.Error())
	default:
		return rt.storeFailure("update", err)
	}
}

func (rt *Router) handleDelete(ctx context.Context, id string, body map[string]any) httpevent.Response {
	if id == "" {
		if v, ok := body["id"]; ok {
			id = models.Stringify(v)
		}
	}
	if id == "" {
		return rt.message(400, "id required")
	}

	if err := rt.items.DeleteItem(ctx, id); err != nil {
		if services.IsValidationError(err) {
			return rt.message(400, err.Error())
		}
		return rt.storeFailure("delete", err)
	}
	return rt.message(200, "deleted")
}

// storeFailure logs the underlying cause and returns the opaque 500. Store
// detail never reaches the caller.
func (rt *Router) storeFailure(op string, err error) httpevent.Response {
	rt.logger.WithFields(logrus.Fields{
		"operation": op,
		"error":     err.Error(),
	}).Error("Store operation failed")
	return rt.message(500, "internal error")
}

// bodyKeys returns the sorted key names of the body for logging. Values are
// never logged.
func bodyKeys(body map[string]any) []string {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
