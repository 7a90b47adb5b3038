package activity

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/store"
)

// Topics returns the topic list, or the default list when none is stored
func (s *Service) Topics(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topicsLocked(ctx)
}

func (s *Service) topicsLocked(ctx context.Context) []string {
	var topics []string
	found, err := store.GetJSON(ctx, s.store, domain.KeyListItems, &topics)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTopicsLoadFailed, "error", err)
	}
	if err != nil || !found {
		return slices.Clone(domain.DefaultTopics)
	}
	return topics
}

func (s *Service) saveTopicsLocked(ctx context.Context, topics []string) error {
	return store.SetJSON(ctx, s.store, domain.KeyListItems, topics)
}

// AddTopic appends a topic. Duplicates are rejected.
func (s *Service) AddTopic(ctx context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	topics := s.topicsLocked(ctx)
	if slices.Contains(topics, topic) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrTopicExists, topic)
	}
	topics = append(topics, topic)
	err := s.saveTopicsLocked(ctx, topics)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.engage(ctx, EngagementAddTopic, topic)
	return topics, nil
}

// RemoveTopic deletes a topic from the list
func (s *Service) RemoveTopic(ctx context.Context, topic string) ([]string, error) {
	s.mu.Lock()
	topics := s.topicsLocked(ctx)
	i := slices.Index(topics, topic)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrTopicNotFound, topic)
	}
	topics = slices.Delete(topics, i, i+1)
	err := s.saveTopicsLocked(ctx, topics)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.engage(ctx, EngagementRemoveTopic, topic)
	return topics, nil
}

// ResetTopics restores the default topic list
func (s *Service) ResetTopics(ctx context.Context) ([]string, error) {
	topics := slices.Clone(domain.DefaultTopics)
	s.mu.Lock()
	err := s.saveTopicsLocked(ctx, topics)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.engage(ctx, EngagementResetTopics, "")
	return topics, nil
}

// SearchTopics returns the topics containing query, ignoring case.
// An empty query returns every topic and is not recorded as a search.
func (s *Service) SearchTopics(ctx context.Context, query string) []string {
	topics := s.Topics(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return topics
	}

	fold := cases.Fold()
	needle := fold.String(query)
	results := make([]string, 0, len(topics))
	for _, t := range topics {
		if strings.Contains(fold.String(t), needle) {
			results = append(results, t)
		}
	}

	s.track(ctx, domain.EventSearchPerformed, domain.Properties{
		PropQuery:       domain.StringValue(query),
		PropResultCount: domain.IntValue(len(results)),
	})
	s.progress(ctx, domain.ChallengeKeywordSearch, 1)
	return results
}

func (s *Service) requireTopic(ctx context.Context, topic string) error {
	if !slices.Contains(s.Topics(ctx), topic) {
		return fmt.Errorf("%w: %s", domain.ErrTopicNotFound, topic)
	}
	return nil
}

// ViewTopic records that a topic was opened
func (s *Service) ViewTopic(ctx context.Context, topic string) error {
	if err := s.requireTopic(ctx, topic); err != nil {
		return err
	}
	s.engage(ctx, EngagementViewTopic, topic)
	s.achievements.UpdateProgress(ctx, domain.AchievementFirstTopic, 1)
	s.progress(ctx, domain.ChallengeKeywordKnowledge, 1)
	return nil
}

// CompleteTopic marks a topic completed. It returns false if it already was.
func (s *Service) CompleteTopic(ctx context.Context, topic string) (bool, error) {
	if err := s.requireTopic(ctx, topic); err != nil {
		return false, err
	}
	added := s.achievements.CompleteTopic(ctx, topic)
	if added {
		s.engage(ctx, EngagementCompleteTopic, topic)
	}
	s.progress(ctx, "", 0)
	return added, nil
}

// FavoriteTopic toggles a favorite and returns whether the topic is now a favorite.
// Only adding a favorite counts towards the daily challenge.
func (s *Service) FavoriteTopic(ctx context.Context, topic string) (bool, error) {
	if err := s.requireTopic(ctx, topic); err != nil {
		return false, err
	}
	favorited := s.achievements.ToggleFavoriteTopic(ctx, topic)
	s.track(ctx, domain.EventItemFavorited, domain.Properties{
		PropItem:      domain.StringValue(topic),
		PropFavorited: domain.BoolValue(favorited),
	})
	if favorited {
		s.progress(ctx, domain.ChallengeKeywordFavorite, 1)
	}
	return favorited, nil
}

// RateTopic stores a 1..5 rating for a topic
func (s *Service) RateTopic(ctx context.Context, topic string, rating int) error {
	if err := s.requireTopic(ctx, topic); err != nil {
		return err
	}
	if err := s.achievements.RateTopic(ctx, topic, rating); err != nil {
		return err
	}
	s.track(ctx, domain.EventRatingGiven, domain.Properties{
		PropItem:   domain.StringValue(topic),
		PropRating: domain.IntValue(rating),
	})
	s.progress(ctx, domain.ChallengeKeywordRating, 1)
	return nil
}
