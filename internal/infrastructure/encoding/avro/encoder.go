package avro

import (
	"fmt"
	"sync"
	"time"

	"github.com/linkedin/goavro/v2"

	"retail_inventory/internal/domain/order"
)

// Encoder wrap goavro codec, thread-safe cho producer dùng chung.
type Encoder struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

func NewOrderEventEncoder() (*Encoder, error) {
	codec, err := goavro.NewCodec(OrderEventSchema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

// Encode chuyển order.Event sang Avro binary theo OrderEventSchema.
func (e *Encoder) Encode(ev order.Event) ([]byte, error) {
	native := map[string]interface{}{
		"event_id":    ev.EventID,
		"type":        ev.Type,
		"order_id":    ev.OrderID,
		"customer_id": ev.CustomerID,
		"status":      ev.Status,
		"total":       ev.Total,
		"occurred_at": ev.OccurredAt.Format(time.RFC3339),
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode order event: %w", err)
	}
	return binary, nil
}

// Decode giải mã Avro binary về native map, chủ yếu phục vụ test và debug.
func (e *Encoder) Decode(data []byte) (map[string]interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	native, _, err := e.codec.NativeFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("decode order event: %w", err)
	}

	out, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("decoded value is not a record")
	}
	return out, nil
}
