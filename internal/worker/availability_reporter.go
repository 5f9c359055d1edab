package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/metrics"
)

// AvailabilityReporter は上映ごとの空席数を定期的にゲージへ反映するワーカー
// 読み取り専用で、ドメイン状態を変更することはない
type AvailabilityReporter struct {
	showRepo show.Repository
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewAvailabilityReporter は新しいレポーターを作成
func NewAvailabilityReporter(sr show.Repository, m *metrics.Metrics, interval time.Duration) *AvailabilityReporter {
	return &AvailabilityReporter{
		showRepo: sr,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はレポーターを開始
func (r *AvailabilityReporter) Start(ctx context.Context) {
	logger.Info("空席レポーター開始", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("空席レポーター停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("空席レポーター停止（シグナル受信）")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

// Stop はレポーターを停止
func (r *AvailabilityReporter) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// report は全上映の空席数をゲージへ反映
func (r *AvailabilityReporter) report(ctx context.Context) {
	shows, err := r.showRepo.List(ctx)
	if err != nil {
		logger.Error("空席レポート失敗", zap.Error(err))
		return
	}
	for _, sh := range shows {
		r.metrics.AvailableSeats.WithLabelValues(sh.ID).Set(float64(sh.CountAvailable()))
	}
	logger.Debug("空席レポート完了", zap.Int("shows", len(shows)))
}
