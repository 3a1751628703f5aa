package avro

// OrderEventSchema là Avro schema cho order event publish ra Kafka.
// occurred_at encode dạng string RFC 3339 cho dễ đọc ở downstream.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.retail.inventory",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "type", "type": "string"},
		{"name": "order_id", "type": "string"},
		{"name": "customer_id", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "total", "type": "double"},
		{"name": "occurred_at", "type": "string"}
	]
}`
