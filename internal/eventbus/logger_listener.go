package eventbus

import (
	"context"
	"sort"
	"strings"

	"github.com/annel0/isocity/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в лог компонента "eventbus".
// Функция неблокирующая.
func StartLoggingListener(bus EventBus) (Subscription, error) {
	log := logging.GetComponentLogger("eventbus")

	sub, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		log.Debug("%s %s src=%s corr=%s %s", ev.ID, ev.EventType, ev.Source, ev.CorrelationID, formatMetadata(ev.Metadata))
	})
	if err != nil {
		return nil, err
	}
	log.Info("🪵 LoggingListener: подписка на все события активирована")
	return sub, nil
}

// formatMetadata печатает атрибуты в стабильном порядке ключей
func formatMetadata(md map[string]string) string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(md[k])
	}
	return sb.String()
}
