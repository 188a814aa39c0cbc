package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StorePathKey = "store.path"

	storeFileMode   = 0o600
	storeDirMode    = 0o700
	storeConfigDir  = ".tradebot"
	storeConfigFile = "proposals.toml"
	tempFilePattern = ".proposals-*.toml.tmp"
)

// Repository keeps tracked proposals and the offer poll cursor in one TOML
// file, rewritten atomically on every save.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProposalRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(StorePathKey, filepath.Join(homeDir, storeConfigDir, storeConfigFile))

	path := cfg.GetString(StorePathKey)
	if path == "" {
		return nil, errors.New("proposal store path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, proposal domain.TradeProposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(proposal)
	updated := false
	for i := range file.Proposals {
		if file.Proposals[i].ID == encoded.ID {
			file.Proposals[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Proposals = append(file.Proposals, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.ProposalID) (domain.TradeProposal, error) {
	if err := ctx.Err(); err != nil {
		return domain.TradeProposal{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.TradeProposal{}, err
	}

	for _, entry := range file.Proposals {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.TradeProposal{}, fmt.Errorf("proposal %s: %w", id, domain.ErrProposalNotFound)
}

// List returns proposals oldest first.
func (r *Repository) List(ctx context.Context) ([]domain.TradeProposal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	proposals := make([]domain.TradeProposal, 0, len(file.Proposals))
	for _, entry := range file.Proposals {
		proposals = append(proposals, fromSchema(entry))
	}
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.Before(proposals[j].CreatedAt)
	})

	return proposals, nil
}

func (r *Repository) PollCursor(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return time.Time{}, err
	}

	return parseTime(file.PollCursor), nil
}

func (r *Repository) SetPollCursor(ctx context.Context, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.PollCursor = formatTime(at)

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read proposals file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode proposals file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), storeDirMode); err != nil {
		return fmt.Errorf("create proposals directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode proposals file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp proposals file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp proposals file: %w", err)
	}
	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp proposals file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp proposals file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace proposals file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve proposals path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(p domain.TradeProposal) proposalSchema {
	items := make([]itemSchema, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, itemSchema{AppID: item.AppID, ContextID: item.ContextID, AssetID: item.AssetID})
	}

	var dealID *int64
	if p.DealID != nil {
		raw := int64(*p.DealID)
		dealID = &raw
	}

	return proposalSchema{
		ID:           string(p.ID),
		Direction:    string(p.Direction),
		Counterparty: p.Counterparty.String(),
		Status:       string(p.Status),
		StateCode:    int(p.StateCode),
		DealID:       dealID,
		Message:      p.Message,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
		ExpiresAt:    formatTime(p.ExpiresAt),
		Items:        items,
		Notify: notifySchema{
			Status:   string(p.NotifiedStatus),
			Attempts: p.NotifyAttempts,
		},
	}
}

func fromSchema(entry proposalSchema) domain.TradeProposal {
	var items []domain.ItemRef
	if len(entry.Items) > 0 {
		items = make([]domain.ItemRef, 0, len(entry.Items))
		for _, item := range entry.Items {
			items = append(items, domain.ItemRef{AppID: item.AppID, ContextID: item.ContextID, AssetID: item.AssetID})
		}
	}

	var dealID *domain.DealID
	if entry.DealID != nil {
		deal := domain.DealID(*entry.DealID)
		dealID = &deal
	}

	counterparty, _ := strconv.ParseUint(entry.Counterparty, 10, 64)

	return domain.TradeProposal{
		ID:             domain.ProposalID(entry.ID),
		Direction:      domain.Direction(entry.Direction),
		Counterparty:   domain.SteamID(counterparty),
		Items:          items,
		Status:         domain.ParseStatus(entry.Status),
		StateCode:      domain.OfferState(entry.StateCode),
		DealID:         dealID,
		Message:        entry.Message,
		CreatedAt:      parseTime(entry.CreatedAt),
		UpdatedAt:      parseTime(entry.UpdatedAt),
		ExpiresAt:      parseTime(entry.ExpiresAt),
		NotifiedStatus: domain.Status(entry.Notify.Status),
		NotifyAttempts: entry.Notify.Attempts,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
