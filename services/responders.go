package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/stack"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type Subscriber interface {
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
}

// LookupCourse answers a nest-style request {"data": {"_id": "..."}} with
// the course summary
func (c *CourseService) LookupCourse(ctx context.Context, data []byte) ([]byte, error) {
	payload, err := stack.DecodeDataNest(data)
	if err != nil {
		return nil, err
	}
	idCourse, ok := payload["_id"].(string)
	if !ok {
		return nil, fmt.Errorf("_id is required")
	}
	summary, errRes := c.GetCourseSummary(ctx, idCourse)
	if errRes != nil {
		return nil, errRes
	}
	return json.Marshal(summary)
}

func (c *CourseService) ServeCourseLookup(sub Subscriber) error {
	_, err := sub.Subscribe(GET_COURSE, func(m *nats.Msg) {
		response, err := c.LookupCourse(context.Background(), m.Data)
		if err != nil {
			c.Logger.Warn("course lookup failed", zap.Error(err))
			response, _ = json.Marshal(map[string]string{"error": err.Error()})
		}
		if err := m.Respond(response); err != nil {
			c.Logger.Warn("course lookup not answered", zap.Error(err))
		}
	})
	return err
}
