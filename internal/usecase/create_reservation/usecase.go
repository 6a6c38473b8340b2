package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	stationRepo     StationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	stationRepo StationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		stationRepo:     stationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечения и запись идут в одной сериализуемой транзакции,
// иначе два конкурентных запроса на одну станцию с пересекающимися окнами
// оба проходят проверку и оба фиксируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: station=%d, user=%d, date=%s, window=[%s, %s)",
		req.StationID, req.UserID, req.Date.Format(domain.DateFormat),
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных, до обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование станции
	exists, err := uc.stationRepo.Exists(ctx, req.StationID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to check station: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateReservation: station id=%d not found", req.StationID)
		return nil, ErrStationNotFound
	}

	var result *domain.Reservation

	// 3. Проверка слота и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Пересекающиеся бронирования станции (с блокировкой FOR UPDATE)
		overlapping, err := uc.reservationRepo.GetOverlapping(txCtx, req.StationID, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateReservation: slot not available, %d overlapping reservation(s) on station=%d",
				len(overlapping), req.StationID)
			return ErrSlotNotAvailable
		}

		// 3.2. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			StationID: req.StationID,
			UserID:    req.UserID,
			StaffID:   req.StaffID,
			Status:    req.Status,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Amount:    req.Amount,
		})
		if err != nil {
			// Exclusion constraint БД: последняя инстанция против гонки
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot taken at commit time on station=%d", req.StationID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return fromDomain(result), nil
}
