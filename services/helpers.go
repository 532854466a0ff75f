package services

import (
	"strings"

	"github.com/Dosada05/matchmerit/models"
)

// normalizeOptional trims s and turns an empty result into nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func validateMeritConfig(cfg models.MeritConfig) error {
	if cfg.MaxMatchesConsidered <= 0 {
		return ErrInvalidMeritConfig.withDetail("max_matches_considered must be positive")
	}
	if cfg.HoursBeforePenalty < 0 {
		return ErrInvalidMeritConfig.withDetail("hours_before_penalty must not be negative")
	}
	return nil
}

func validateColor(c *models.RGB) error {
	if c != nil && !c.IsValid() {
		return ErrInvalidColor
	}
	return nil
}

// isAcceptedMember reports whether m grants access to the group's matches.
func isAcceptedMember(m *models.GroupMember) bool {
	return m != nil && m.Status == models.MemberStatusAccepted
}
