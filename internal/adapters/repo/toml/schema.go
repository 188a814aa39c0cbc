package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	PollCursor string           `toml:"poll_cursor,omitempty"`
	Proposals  []proposalSchema `toml:"proposals"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported proposals schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type proposalSchema struct {
	ID           string       `toml:"id"`
	Direction    string       `toml:"direction"`
	Counterparty string       `toml:"counterparty"`
	Status       string       `toml:"status"`
	StateCode    int          `toml:"state_code,omitempty"`
	DealID       *int64       `toml:"deal_id,omitempty"`
	Message      string       `toml:"message,omitempty"`
	CreatedAt    string       `toml:"created_at"`
	UpdatedAt    string       `toml:"updated_at"`
	ExpiresAt    string       `toml:"expires_at,omitempty"`
	Items        []itemSchema `toml:"items"`
	Notify       notifySchema `toml:"notify,omitempty"`
}

type itemSchema struct {
	AppID     uint32 `toml:"app_id"`
	ContextID string `toml:"context_id"`
	AssetID   string `toml:"asset_id"`
}

type notifySchema struct {
	Status   string `toml:"status,omitempty"`
	Attempts int    `toml:"attempts,omitempty"`
}
