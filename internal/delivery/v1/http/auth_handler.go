package http

import (
	"encoding/json"
	"net/http"

	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

// LoginRequest — полезная нагрузка POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	authUsecase usecase.AuthUC
	mw          *Middleware
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, mw *Middleware, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		mw:          mw,
		logger:      logger,
	}
}

// login
//
//	@Summary	Вход администратора
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"Учётные данные"
//	@Success	200		{object}	SuccessResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	session, err := h.authUsecase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warnf("login rejected: %s", err.Error())
		WriteError(w, err)
		return
	}

	h.mw.SetSessionCookie(w, session.Token)
	WriteSuccess(w, http.StatusOK, SuccessResponse{Success: true})
}

// signOut
//
//	@Summary	Выход администратора
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/auth/signout [post]
func (h *AuthHandler) signOut(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.authUsecase.SignOut(r.Context(), token); err != nil {
		// Выход идемпотентен: сбой хранилища логируется, cookie всё равно гасится.
		h.logger.Warnf("signout cleanup failed: %s", err.Error())
	}

	h.mw.ClearSessionCookie(w)
	WriteSuccess(w, http.StatusOK, SuccessResponse{Success: true})
}

// methodNotAllowed отвечает фиксированным контрактом на неподдерживаемый метод.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	json.NewEncoder(w).Encode(NewErrorResponse("Method not allowed"))
}
