package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/storefront/internal/service"
)

// LoginRequest представляет структуру запроса для входа с тегами валидации
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse представляет структуру ответа с профилем и токеном сессии
type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

var validate = validator.New()

// LoginHandler – HTTP-обработчик входа, принимает логгер и сервис сессий
func LoginHandler(log *slog.Logger, sessions service.SessionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.LoginHandler"
		logger := log.With(slog.String("op", op))

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Валидация структуры запроса с использованием validator
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			http.Error(w, "validation error", http.StatusBadRequest)
			return
		}

		user, err := sessions.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				logger.Warn("login rejected")
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			logger.Error("login failed", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		resp := LoginResponse{Email: user.Email, Token: user.Token}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}
}

// LogoutHandler обрабатывает запрос POST /api/logout: удаляет сохранённую
// сессию и очищает корзину
func LogoutHandler(log *slog.Logger, sessions service.SessionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.LogoutHandler"
		logger := log.With(slog.String("op", op))

		if err := sessions.Logout(r.Context()); err != nil {
			logger.Error("logout failed", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SessionHandler обрабатывает запрос GET /api/session: возвращает профиль
// текущего пользователя
func SessionHandler(log *slog.Logger, sessions service.SessionServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.SessionHandler"
		logger := log.With(slog.String("op", op))

		user := sessions.Current()
		if user == nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
