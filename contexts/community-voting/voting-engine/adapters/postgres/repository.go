package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const votingConfigRowID = "voting"

// Repository is the online voting backend. Vote moves run inside a single
// row-locked transaction spanning the new and previous participant rows;
// everything else is plain row CRUD.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AutoMigrate creates the voting tables. Called once from bootstrap after a
// successful connect.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&participantModel{}, &votingConfigModel{})
}

func (r *Repository) ListParticipants(ctx context.Context) ([]entities.Participant, error) {
	var rows []participantModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_participants_failed", err)
	}
	items := make([]entities.Participant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetParticipant(ctx context.Context, id string) (entities.Participant, error) {
	var row participantModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Participant{}, domainerrors.ErrParticipantNotFound
		}
		return entities.Participant{}, r.logError("voting_repo_get_participant_failed", err, "participant_id", strings.TrimSpace(id))
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateParticipant(ctx context.Context, participant entities.Participant) (entities.Participant, error) {
	row := participantModelFromEntity(participant)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Participant{}, domainerrors.ErrConflict
		}
		return entities.Participant{}, r.logError("voting_repo_create_participant_failed", err,
			"participant_id", row.ID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteParticipant(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		Delete(&participantModel{}).
		Error
	if err != nil {
		return r.logError("voting_repo_delete_participant_failed", err, "participant_id", strings.TrimSpace(id))
	}
	return nil
}

// MoveVote is the two-row atomic vote move. The target row is incremented;
// the previous row, when given and still present, is decremented floored at
// zero. A missing target aborts the transaction with no partial effect.
// Rows are locked in ascending id order so two opposite-direction moves on
// the same pair never deadlock.
func (r *Repository) MoveVote(ctx context.Context, toID string, fromID string) error {
	toID = strings.TrimSpace(toID)
	fromID = strings.TrimSpace(fromID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := make(map[string]participantModel, 2)
		for _, id := range lockOrder(toID, fromID) {
			var row participantModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).
				First(&row).
				Error
			switch {
			case err == nil:
				locked[id] = row
			case errors.Is(err, gorm.ErrRecordNotFound):
				if id == toID {
					return domainerrors.ErrParticipantNotFound
				}
				// Previous target was removed concurrently; nothing to decrement.
			default:
				return err
			}
		}

		if previous, ok := locked[fromID]; ok && fromID != "" && fromID != toID {
			next := previous.Votes - 1
			if next < 0 {
				next = 0
			}
			if err := tx.Model(&participantModel{}).
				Where("id = ?", fromID).
				Update("votes", next).Error; err != nil {
				return err
			}
		}

		return tx.Model(&participantModel{}).
			Where("id = ?", toID).
			Update("votes", locked[toID].Votes+1).
			Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrParticipantNotFound) {
			return err
		}
		return r.logError("voting_repo_move_vote_failed", err,
			"to_id", toID,
			"from_id", fromID,
		)
	}
	return nil
}

func (r *Repository) ResetVotes(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&participantModel{}).
		Where("votes <> 0").
		Update("votes", 0).
		Error
	if err != nil {
		return r.logError("voting_repo_reset_votes_failed", err)
	}
	return nil
}

// VotingActive reads the single config row, creating it with default false
// when absent.
func (r *Repository) VotingActive(ctx context.Context) (bool, error) {
	var row votingConfigModel
	err := r.db.WithContext(ctx).
		Where("id = ?", votingConfigRowID).
		First(&row).
		Error
	if err == nil {
		return row.Active, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, r.logError("voting_repo_get_config_failed", err)
	}

	row = votingConfigModel{ID: votingConfigRowID, Active: false}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil && !isUniqueViolation(err) {
		return false, r.logError("voting_repo_create_config_failed", err)
	}
	return false, nil
}

func (r *Repository) SetVotingActive(ctx context.Context, active bool) error {
	row := votingConfigModel{ID: votingConfigRowID, Active: active}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{"active": active}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("voting_repo_set_config_failed", err, "voting_active", active)
	}
	return nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "community-voting/voting-engine",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("voting repository operation failed", fields...)
	return err
}

type participantModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Avatar      string    `gorm:"column:avatar"`
	Votes       int       `gorm:"column:votes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (participantModel) TableName() string {
	return "vote_participants"
}

func participantModelFromEntity(participant entities.Participant) participantModel {
	row := participantModel{
		ID:          strings.TrimSpace(participant.ID),
		Name:        participant.Name,
		Description: participant.Description,
		Avatar:      participant.Avatar,
		Votes:       participant.Votes,
		CreatedAt:   participant.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m participantModel) toEntity() entities.Participant {
	return entities.Participant{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Avatar:      m.Avatar,
		Votes:       m.Votes,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type votingConfigModel struct {
	ID     string `gorm:"column:id;primaryKey"`
	Active bool   `gorm:"column:active"`
}

func (votingConfigModel) TableName() string {
	return "voting_config"
}

// lockOrder yields the participant ids a vote move must lock, smallest id
// first. The previous id is skipped when empty or equal to the target.
func lockOrder(toID string, fromID string) []string {
	if fromID == "" || fromID == toID {
		return []string{toID}
	}
	if fromID < toID {
		return []string{fromID, toID}
	}
	return []string{toID, fromID}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.ParticipantRepository = (*Repository)(nil)
var _ ports.ConfigRepository = (*Repository)(nil)
