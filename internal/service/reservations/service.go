package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
	userClient "github.com/babypavshiy/GameClubBooking/internal/integrations/userservice"
	"github.com/babypavshiy/GameClubBooking/internal/service/reservations/models"
)

// Service сервис для чтения и удаления бронирований
// Создание и обновление живут в отдельных usecase-пакетах:
// там есть проверка слота и транзакционная граница
type Service struct {
	reservationRepo ReservationRepository
	userService     UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userService UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userService:     userService,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает все бронирования
// Доступно только администраторам и сотрудникам клуба,
// роль проверяется через UserService
func (s *Service) List(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching all reservations for user=%d", userID)

	if err := s.checkManagerAccess(ctx, userID); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронирование по ID
// Сначала загружаем запись, чтобы удаление несуществующего ID
// вернуло NotFound, а не успех
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// checkManagerAccess проверяет, что пользователь администратор или сотрудник
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("checkManagerAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.CanManageReservations() {
		s.logger.Warn("checkManagerAccess: user id=%d with role=%s denied", userID, user.Role)
		return ErrAccessDenied
	}

	return nil
}
