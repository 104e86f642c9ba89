package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mockedapi/internal/core"
	"mockedapi/internal/http/handler/middleware"
	"mockedapi/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Health        = "GET /{$}"
	CreateAccount = "POST /user"
	UpdateAccount = "PUT /user"
	DeleteAccount = "DELETE /user"
	GetAccount    = "GET /user"
)

// AccountHandler serves the account API. Business outcomes such as an existing
// or missing account are answered with 200 and a fixed text body; 400 is kept
// for requests that are missing required input.
type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
	}
}

// Register adds the account routes to mux.
func (h *AccountHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Health, h.HandleHealth)
	mux.HandleFunc(CreateAccount, h.HandleCreateAccount)
	mux.HandleFunc(UpdateAccount, h.HandleUpdateAccount)
	mux.HandleFunc(DeleteAccount, h.HandleDeleteAccount)
	mux.HandleFunc(GetAccount, h.HandleGetAccount)
}

func (h *AccountHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respondText(w, msgBackendAPI, http.StatusOK)
}

func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.CreateAccountRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = payload.Validate(req)
	}
	if err != nil {
		h.respondInvalid(w, err, CreateAccount, requestId)
		return
	}

	err = h.accounts.CreateAccount(r.Context(), req.ToCoreNewAccount())
	if errors.Is(err, core.ErrAccountExists) {
		h.logs.Infow("account already exists",
			"username", req.Username,
			"handler", CreateAccount,
			"request_id", requestId)
		h.respondText(w, msgAccountExists, http.StatusOK)
		return
	}
	if err != nil {
		h.respondFailure(w, fmt.Errorf("create account: %w", err), CreateAccount, requestId)
		return
	}

	h.respondText(w, msgAccountCreated, http.StatusOK)
}

func (h *AccountHandler) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.UpdateAccountRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondInvalid(w, err, UpdateAccount, requestId)
		return
	}
	req.Username = r.URL.Query().Get("username")
	if err := payload.Validate(req); err != nil {
		h.respondInvalid(w, errors.New(errUsernameQueryParam), UpdateAccount, requestId)
		return
	}

	err := h.accounts.UpdateAccount(r.Context(), req.Username, req.ToCoreAccountPatch())
	if errors.Is(err, core.ErrAccountNotFound) {
		h.respondText(w, msgUpdateNotFound, http.StatusOK)
		return
	}
	if err != nil {
		h.respondFailure(w, fmt.Errorf("update account: %w", err), UpdateAccount, requestId)
		return
	}

	h.respondText(w, msgAccountUpdated, http.StatusOK)
}

func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	query := payload.AccountQuery{Username: r.URL.Query().Get("username")}
	if err := payload.Validate(query); err != nil {
		h.respondInvalid(w, errors.New(errUsernameQueryParam), DeleteAccount, requestId)
		return
	}

	err := h.accounts.DeleteAccount(r.Context(), query.Username)
	if errors.Is(err, core.ErrAccountNotFound) {
		h.respondText(w, msgDeleteNotFound, http.StatusOK)
		return
	}
	if err != nil {
		h.respondFailure(w, fmt.Errorf("delete account: %w", err), DeleteAccount, requestId)
		return
	}

	h.respondText(w, msgAccountDeleted, http.StatusOK)
}

func (h *AccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	query := payload.AccountQuery{Username: r.URL.Query().Get("username")}
	if err := payload.Validate(query); err != nil {
		h.respondInvalid(w, errors.New(errUsernameQueryParam), GetAccount, requestId)
		return
	}

	acc, err := h.accounts.GetAccount(r.Context(), query.Username)
	if errors.Is(err, core.ErrAccountNotFound) {
		h.respondText(w, msgLookupNotFound, http.StatusOK)
		return
	}
	if err != nil {
		h.respondFailure(w, fmt.Errorf("get account: %w", err), GetAccount, requestId)
		return
	}

	h.respondJSON(w, acc, http.StatusOK, requestId)
}

func (h *AccountHandler) respondInvalid(w http.ResponseWriter, err error, handler, requestId string) {
	h.logs.Errorw("invalid request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
	h.respondJSON(w, Response{
		Message: msgInvalidRequest,
		Error:   err.Error(),
	}, http.StatusBadRequest, requestId)
}

func (h *AccountHandler) respondFailure(w http.ResponseWriter, err error, handler, requestId string) {
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
	h.respondJSON(w, Response{
		Message: msgUnexpectedFailure,
		Error:   "unexpected error occurred",
	}, http.StatusInternalServerError, requestId)
}

func (h *AccountHandler) respondText(w http.ResponseWriter, body string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (h *AccountHandler) respondJSON(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
