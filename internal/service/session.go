package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/lib/token"
	"github.com/linemk/storefront/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// credential — запись встроенного allow-list. Пароль хранится как bcrypt-хэш
type credential struct {
	email    string
	passHash []byte
}

// Фиксированный список учётных записей демо-витрины.
// Пары хэшируются один раз при старте процесса; во время выполнения
// список не изменяется
var allowList = mustBuildAllowList(map[string]string{
	"test@zignuts.com":      "123456",
	"practical@zignuts.com": "123456",
})

func mustBuildAllowList(pairs map[string]string) []credential {
	creds := make([]credential, 0, len(pairs))
	for email, password := range pairs {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			panic("service: failed to hash built-in credential: " + err.Error())
		}
		creds = append(creds, credential{email: email, passHash: hash})
	}
	return creds
}

// CartClearer — то, что сессия очищает при выходе пользователя
type CartClearer interface {
	Clear()
}

// SessionService управляет состоянием текущего пользователя: вход по
// встроенному allow-list, выход и восстановление сессии после перезапуска.
// Токен и профиль пользователя сохраняются в Store, сам текущий пользователь
// живёт в памяти сервиса
type SessionService struct {
	log   *slog.Logger
	store storage.Store
	cart  CartClearer

	mu   sync.Mutex
	user *models.User
}

type SessionServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	Current() *models.User
}

func NewSessionService(log *slog.Logger, store storage.Store, cart CartClearer) *SessionService {
	return &SessionService{
		log:   log,
		store: store,
		cart:  cart,
	}
}

// Login проверяет пару (email, password) по встроенному списку.
// При совпадении генерирует токен, сохраняет токен и профиль {email, token}
// и делает пользователя текущим. При несовпадении состояние не меняется
func (s *SessionService) Login(ctx context.Context, email, password string) (*models.User, error) {
	const op = "service.SessionService.Login"
	logger := s.log.With(slog.String("op", op), slog.String("email", email))
	logger.Info("checking credentials")

	var matched bool
	for _, cred := range allowList {
		if cred.email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(cred.passHash, []byte(password)) == nil {
			matched = true
		}
		break
	}
	if !matched {
		// не различаем "нет такого email" и "неверный пароль"
		logger.Warn("invalid credentials")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user := &models.User{Email: email, Token: token.New()}

	if err := s.store.Set(ctx, storage.KeyUserToken, []byte(user.Token)); err != nil {
		logger.Error("failed to persist token", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to persist token: %w", op, err)
	}
	if err := storage.SetJSON(ctx, s.store, storage.KeyUserData, user); err != nil {
		logger.Error("failed to persist user profile", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to persist user profile: %w", op, err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	logger.Info("user logged in successfully")
	return user, nil
}

// Logout удаляет сохранённые токен и профиль, сбрасывает текущего
// пользователя и очищает корзину
func (s *SessionService) Logout(ctx context.Context) error {
	const op = "service.SessionService.Logout"
	logger := s.log.With(slog.String("op", op))

	if err := s.store.Remove(ctx, storage.KeyUserToken); err != nil {
		logger.Error("failed to remove token", slog.Any("error", err))
		return fmt.Errorf("%s: failed to remove token: %w", op, err)
	}
	if err := s.store.Remove(ctx, storage.KeyUserData); err != nil {
		logger.Error("failed to remove user profile", slog.Any("error", err))
		return fmt.Errorf("%s: failed to remove user profile: %w", op, err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.cart.Clear()

	logger.Info("user logged out")
	return nil
}

// Restore восстанавливает сессию после перезапуска процесса: читает токен и
// профиль из хранилища. Пароль повторно не проверяется. Если хотя бы одно из
// значений отсутствует или не разбирается, остаёмся в состоянии "не вошёл" —
// частичного восстановления нет. Возвращает nil, nil если сессии нет
func (s *SessionService) Restore(ctx context.Context) (*models.User, error) {
	const op = "service.SessionService.Restore"
	logger := s.log.With(slog.String("op", op))

	if _, err := s.store.Get(ctx, storage.KeyUserToken); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Info("no saved session")
			return nil, nil
		}
		logger.Error("failed to read token", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to read token: %w", op, err)
	}

	var user models.User
	if err := storage.GetJSON(ctx, s.store, storage.KeyUserData, &user); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Info("no saved user profile")
			return nil, nil
		}
		logger.Error("failed to read user profile", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to read user profile: %w", op, err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	logger.Info("session restored", slog.String("email", user.Email))
	return &user, nil
}

// Current возвращает текущего пользователя или nil, если никто не вошёл
func (s *SessionService) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
