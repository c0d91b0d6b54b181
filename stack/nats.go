package stack

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const REQUEST_TIMEOUT = time.Second * 5

type NatsClient struct {
	conn *nats.Conn
}

// Nest-style envelope shared with the rest of the platform
type NatsNestJSReq struct {
	ID   string      `json:"id"`
	Data interface{} `json:"data,omitempty"`
}

type NatsNestJSRes struct {
	Response   interface{} `json:"response"`
	IsDisposed bool        `json:"isDisposed"`
	ID         string      `json:"id"`
}

func NewNats(host string) (*NatsClient, error) {
	conn, err := nats.Connect(
		fmt.Sprintf("nats://%s", host),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second*2),
	)
	if err != nil {
		return nil, err
	}
	return &NatsClient{
		conn: conn,
	}, nil
}

func FormatRequest(data interface{}) ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	return json.Marshal(NatsNestJSReq{
		ID:   id.String(),
		Data: data,
	})
}

// DecodeDataNest returns the data of a nest-style request
func DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var request map[string]interface{}
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	payload, ok := request["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("nats request without data")
	}
	return payload, nil
}

func (n *NatsClient) Publish(subject string, data []byte) error {
	return n.conn.Publish(subject, data)
}

func (n *NatsClient) PublishEncode(subject string, data interface{}) error {
	payload, err := FormatRequest(data)
	if err != nil {
		return err
	}
	return n.conn.Publish(subject, payload)
}

func (n *NatsClient) Request(subject string, data []byte) (*nats.Msg, error) {
	return n.conn.Request(subject, data, REQUEST_TIMEOUT)
}

func (n *NatsClient) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	return n.conn.Subscribe(subject, handler)
}

func (n *NatsClient) Close() {
	n.conn.Close()
}
