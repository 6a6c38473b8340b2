package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
)

// UseCase use case частичного обновления бронирования
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

// Execute выполняет use case обновления бронирования
// Чтение, проверка пересечения и запись идут в одной сериализуемой транзакции
// Собственное бронирование исключается из проверки пересечения,
// поэтому обновление в то же окно проходит без конфликта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загружаем существующее бронирование (с блокировкой строки)
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Накладываем непустые поля запроса на сохранённые значения
		merged := mergeReservation(existing, req)

		// 4. Валидируем итоговое окно
		if err := validateWindow(merged.Date, merged.StartTime, merged.EndTime); err != nil {
			uc.logger.Warn("UpdateReservation: window validation failed: %v", err)
			return err
		}

		// 5. Проверяем новую станцию, только если она сменилась
		if req.StationID != nil && *req.StationID != existing.StationID {
			exists, err := uc.stationRepo.Exists(txCtx, merged.StationID)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to check station id=%d: %v", merged.StationID, err)
				return fmt.Errorf("%w: failed to check station: %v", ErrInternal, err)
			}
			if !exists {
				uc.logger.Warn("UpdateReservation: station id=%d not found", merged.StationID)
				return ErrStationNotFound
			}
		}

		// 6. Проверяем пересечения, исключая само бронирование
		overlapping, err := uc.reservationRepo.GetOverlapping(
			txCtx, merged.StationID, merged.StartTime, merged.EndTime, &req.ID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("UpdateReservation: slot not available, %d overlapping reservation(s) on station=%d",
				len(overlapping), merged.StationID)
			return ErrSlotNotAvailable
		}

		// 7. Сохраняем объединённое бронирование
		if err := uc.reservationRepo.Update(txCtx, merged); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateReservation: slot taken at commit time on station=%d", merged.StationID)
				return ErrSlotNotAvailable
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = merged
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	return fromDomain(result), nil
}
