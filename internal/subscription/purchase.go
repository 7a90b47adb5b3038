package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/utils"
)

// SimulatePurchase runs a fake store transaction in the background. After a random delay
// the purchase succeeds with the configured probability and its effect is applied.
// completion, if set, is called exactly once with the outcome.
func (c *Controller) SimulatePurchase(ctx context.Context, item domain.PurchaseItem, completion func(bool)) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.wg.Add(1)
	c.mu.Unlock()

	if c.analytics != nil {
		c.analytics.TrackPurchase(ctx, item, false)
	}

	delay := utils.RandomDuration(c.random, c.cfg.PurchaseMinDelay, c.cfg.PurchaseMaxDelay)
	logger.FromContext(ctx).Info(LogMsgPurchaseStarted, "item_id", item.ID, "type", item.Type, "delay", delay)

	bg := context.WithoutCancel(ctx)
	time.AfterFunc(delay, func() {
		defer c.wg.Done()
		c.finishPurchase(bg, item, completion)
	})
	return nil
}

func (c *Controller) finishPurchase(ctx context.Context, item domain.PurchaseItem, completion func(bool)) {
	success := utils.Chance(c.random, c.cfg.PurchaseSuccessRate)

	if success {
		switch item.Type {
		case domain.PurchaseSubscription:
			if c.CurrentTier(ctx) == domain.TierFree {
				c.StartTrial(ctx, item.Tier, 0)
			} else if err := c.SetTier(ctx, item.Tier); err != nil {
				logger.FromContext(ctx).Warn(LogMsgPersistFailed, "item_id", item.ID, "error", err)
			}
		case domain.PurchaseOneTime, domain.PurchaseUpgrade:
			if err := c.UnlockFeature(ctx, item.FeatureID); err != nil {
				logger.FromContext(ctx).Warn(LogMsgPersistFailed, "item_id", item.ID, "error", err)
			}
		}
	} else if c.analytics != nil {
		c.analytics.TrackError(ctx, &domain.AppError{
			ID:        uuid.NewString(),
			Type:      domain.ErrorTypeUnknown,
			Message:   PurchaseFailedMessage,
			Timestamp: c.clock.Now(),
			Context: map[string]string{
				ContextKeyItemID:       item.ID,
				ContextKeyPurchaseType: string(item.Type),
			},
		})
	}

	logger.FromContext(ctx).Info(LogMsgPurchaseCompleted, "item_id", item.ID, "success", success)
	if c.analytics != nil {
		c.analytics.TrackPurchase(ctx, item, success)
	}
	if completion != nil {
		completion(success)
	}
}

// Shutdown stops accepting purchases and waits for in-flight ones to finish
func (c *Controller) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
