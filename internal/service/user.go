package service

import (
	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
)

// UserService exposes identity lookups. Users are referenced, never owned,
// by the board entities; this service is what the auth middleware resolves
// the session's user through.
type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) ByEmail(email string) (*model.User, error) {
	return s.userRepository.ByEmail(email)
}
