package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/krelinga/folder-workflows/fwrest"
	"github.com/krelinga/folder-workflows/internal"
	"github.com/krelinga/folder-workflows/internal/byline"
	"github.com/krelinga/folder-workflows/internal/fwactivity"
	"github.com/krelinga/folder-workflows/internal/fwfolder"
	"github.com/krelinga/folder-workflows/internal/fwmetrics"
	"github.com/krelinga/folder-workflows/internal/workflows/fwbatch"
	"github.com/krelinga/folder-workflows/internal/workflows/fwperiodic"
)

// Server implements the fwrest.StrictServerInterface for the folder workflows.
type Server struct {
	temporalClient client.Client
	dataRoot       string
	metrics        *fwmetrics.Metrics
	gatherer       prometheus.Gatherer
	validator      *requestValidator
}

// NewServer creates a new Server that starts workflows rooted at dataRoot.
func NewServer(temporalClient client.Client, dataRoot string, metrics *fwmetrics.Metrics, gatherer prometheus.Gatherer) (*Server, error) {
	validator, err := newRequestValidator()
	if err != nil {
		return nil, err
	}
	return &Server{
		temporalClient: temporalClient,
		dataRoot:       dataRoot,
		metrics:        metrics,
		gatherer:       gatherer,
		validator:      validator,
	}, nil
}

// Handler returns an http.Handler that routes requests to the server implementation.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", fwmetrics.Handler(s.gatherer))

	strict := fwrest.NewStrictHandlerWithOptions(s, nil, fwrest.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: internalError,
	})
	handler := fwrest.HandlerWithOptions(strict, fwrest.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: badRequest,
	})
	return s.validator.Middleware(handler)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(fwrest.Error{Code: code, Message: message})
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

// batchFailure describes why a batch workflow did not produce folders.
type batchFailure struct {
	fwrest.Error
	badRequest bool
}

// runBatch starts a batch workflow and waits for its result.
func (s *Server) runBatch(ctx context.Context, params fwbatch.Params) ([]string, *batchFailure) {
	params.DataRoot = s.dataRoot
	workflowOptions := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("%s-%s", params.Kind, uuid.NewString()),
		TaskQueue: internal.TaskQueue,
	}

	run, err := s.temporalClient.ExecuteWorkflow(ctx, workflowOptions, fwbatch.Workflow, params)
	if err != nil {
		return nil, &batchFailure{Error: fwrest.Error{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("failed to start workflow: %v", err),
		}}
	}
	s.metrics.WorkflowStarted(string(params.Kind))

	var result fwbatch.Result
	if err := run.Get(ctx, &result); err != nil {
		if fwactivity.IsBadRequest(err) {
			return nil, &batchFailure{
				Error:      fwrest.Error{Code: "BAD_REQUEST", Message: err.Error()},
				badRequest: true,
			}
		}
		return nil, &batchFailure{Error: fwrest.Error{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("workflow failed: %v", err),
		}}
	}
	if result.Folders == nil {
		result.Folders = []string{}
	}
	return result.Folders, nil
}

// CreateRange creates one folder per integer in [start, end].
func (s *Server) CreateRange(ctx context.Context, request fwrest.CreateRangeRequestObject) (fwrest.CreateRangeResponseObject, error) {
	folders, failure := s.runBatch(ctx, fwbatch.Params{
		Kind:  fwbatch.KindRange,
		Start: request.Body.Start,
		End:   request.Body.End,
	})
	switch {
	case failure == nil:
		return fwrest.CreateRange201JSONResponse{Folders: folders}, nil
	case failure.badRequest:
		return fwrest.CreateRange400JSONResponse(failure.Error), nil
	default:
		return fwrest.CreateRange500JSONResponse(failure.Error), nil
	}
}

func flag(b *bool) bool {
	return b != nil && *b
}

// CreateList creates one folder per name with the requested transforms.
func (s *Server) CreateList(ctx context.Context, request fwrest.CreateListRequestObject) (fwrest.CreateListResponseObject, error) {
	params := fwbatch.Params{
		Kind:  fwbatch.KindList,
		Names: request.Body.Names,
		Transforms: fwfolder.Transforms{
			Lowercase:     flag(request.Body.Lowercase),
			ReplaceSpaces: flag(request.Body.ReplaceSpaces),
			AddDate:       flag(request.Body.AddDate),
		},
	}
	if request.Body.Date != nil {
		params.Date = request.Body.Date.Time
	}
	folders, failure := s.runBatch(ctx, params)
	switch {
	case failure == nil:
		return fwrest.CreateList201JSONResponse{Folders: folders}, nil
	case failure.badRequest:
		return fwrest.CreateList400JSONResponse(failure.Error), nil
	default:
		return fwrest.CreateList500JSONResponse(failure.Error), nil
	}
}

// CreatePrefixed creates prefix+name for each name.
func (s *Server) CreatePrefixed(ctx context.Context, request fwrest.CreatePrefixedRequestObject) (fwrest.CreatePrefixedResponseObject, error) {
	folders, failure := s.runBatch(ctx, fwbatch.Params{
		Kind:   fwbatch.KindPrefixed,
		Names:  request.Body.Names,
		Prefix: request.Body.Prefix,
	})
	switch {
	case failure == nil:
		return fwrest.CreatePrefixed201JSONResponse{Folders: folders}, nil
	case failure.badRequest:
		return fwrest.CreatePrefixed400JSONResponse(failure.Error), nil
	default:
		return fwrest.CreatePrefixed500JSONResponse(failure.Error), nil
	}
}

// CreatePeriodic starts a periodic workflow with the given UUID. It does not
// wait for the workflow to finish.
func (s *Server) CreatePeriodic(ctx context.Context, request fwrest.CreatePeriodicRequestObject) (fwrest.CreatePeriodicResponseObject, error) {
	params := fwperiodic.Params{
		DataRoot:        s.dataRoot,
		IntervalSeconds: request.Body.IntervalSeconds,
		MaxCount:        request.Body.MaxCount,
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:                                       request.Body.Uuid.String(),
		TaskQueue:                                internal.TaskQueue,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}

	_, err := s.temporalClient.ExecuteWorkflow(ctx, workflowOptions, fwperiodic.Workflow, params)
	if err != nil {
		var alreadyStartedErr *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStartedErr) {
			return fwrest.CreatePeriodic409JSONResponse{
				Code:    "CONFLICT",
				Message: fmt.Sprintf("workflow with UUID %s already exists", request.Body.Uuid.String()),
			}, nil
		}
		return fwrest.CreatePeriodic500JSONResponse{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("failed to start workflow: %v", err),
		}, nil
	}
	s.metrics.WorkflowStarted("periodic")

	return fwrest.CreatePeriodic201JSONResponse{
		Uuid:    request.Body.Uuid,
		Status:  fwrest.Created,
		Folders: []string{},
	}, nil
}

// GetPeriodic retrieves the current state of a periodic workflow by UUID.
func (s *Server) GetPeriodic(ctx context.Context, request fwrest.GetPeriodicRequestObject) (fwrest.GetPeriodicResponseObject, error) {
	workflowID := request.Uuid.String()

	resp, err := s.temporalClient.QueryWorkflow(ctx, workflowID, "", fwperiodic.QueryGetState)
	if err != nil {
		var notFoundErr *serviceerror.NotFound
		if errors.As(err, &notFoundErr) {
			return fwrest.GetPeriodic404JSONResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("workflow with UUID %s not found", workflowID),
			}, nil
		}
		return fwrest.GetPeriodic500JSONResponse{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("failed to query workflow: %v", err),
		}, nil
	}

	var state fwperiodic.State
	if err := resp.Get(&state); err != nil {
		return fwrest.GetPeriodic500JSONResponse{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("failed to decode workflow state: %v", err),
		}, nil
	}

	status := fwrest.Running
	if state.Done {
		status = fwrest.Completed
	}
	folders := state.Created
	if folders == nil {
		folders = []string{}
	}
	return fwrest.GetPeriodic200JSONResponse{
		Uuid:    request.Uuid,
		Status:  status,
		Folders: folders,
	}, nil
}

// CancelPeriodic requests cancellation of a periodic workflow. Folders that
// were already created stay on disk.
func (s *Server) CancelPeriodic(ctx context.Context, request fwrest.CancelPeriodicRequestObject) (fwrest.CancelPeriodicResponseObject, error) {
	workflowID := request.Uuid.String()

	if err := s.temporalClient.CancelWorkflow(ctx, workflowID, ""); err != nil {
		var notFoundErr *serviceerror.NotFound
		if errors.As(err, &notFoundErr) {
			return fwrest.CancelPeriodic404JSONResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("workflow with UUID %s not found", workflowID),
			}, nil
		}
		return fwrest.CancelPeriodic500JSONResponse{
			Code:    "INTERNAL_ERROR",
			Message: fmt.Sprintf("failed to cancel workflow: %v", err),
		}, nil
	}
	return fwrest.CancelPeriodic202Response{}, nil
}

// GetByline returns the byline as plain text.
func (s *Server) GetByline(ctx context.Context, request fwrest.GetBylineRequestObject) (fwrest.GetBylineResponseObject, error) {
	return fwrest.GetByline200TextResponse(byline.Get()), nil
}
