package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pb "morph/api/proto/v1"
	"morph/internal/logging"
	"morph/internal/telemetry"
	"morph/internal/transform"
	"morph/sink"
	"morph/source/kafka"
)

type stage struct {
	name     string
	client   transform.Client
	timeout  time.Duration
	attempts int
	backoff  time.Duration
}

type Runner struct {
	source kafka.Adapter
	stages []stage
	sinks  []sink.Adapter

	mu   sync.Mutex
	subs []func(*pb.SourceAck)
}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) AddSink(s sink.Adapter)    { r.sinks = append(r.sinks, s) }
func (r *Runner) SetSource(s kafka.Adapter) { r.source = s }

// AddTransformer appends a stage; stages run in insertion order.
func (r *Runner) AddTransformer(name string, c transform.Client, timeout time.Duration, attempts int, backoff time.Duration) {
	if timeout <= 0 {
		timeout = time.Second
	}
	r.stages = append(r.stages, stage{
		name:     name,
		client:   c,
		timeout:  timeout,
		attempts: attempts,
		backoff:  backoff,
	})
}

func (r *Runner) SubscribeAck(fn func(*pb.SourceAck)) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

func (r *Runner) Ack(tok *pb.CheckpointToken) {
	ack := &pb.SourceAck{Checkpoint: tok}

	r.mu.Lock()
	handlers := append([]func(*pb.SourceAck){}, r.subs...)
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(ack)
	}
}

/*──────── frame routing ───────*/

// pushFrame routes one frame through every stage in order, then fans the
// surviving frames out to all sinks. Dropped and abandoned frames are acked
// here so the source can release their checkpoints.
func (r *Runner) pushFrame(ctx context.Context, f *pb.Frame) error {
	frames := []*pb.Frame{f}
	for _, st := range r.stages {
		var next []*pb.Frame
		for _, fr := range frames {
			next = append(next, r.applyStage(ctx, st, fr)...)
		}
		if len(next) == 0 {
			return nil
		}
		frames = next
	}
	for _, fr := range frames {
		for _, s := range r.sinks {
			if err := s.Push(fr); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyStage runs one frame through one stage, retrying ERROR outcomes and
// transport failures up to the stage's attempt budget. A dropped frame, or
// one that exhausts its retries, is acked and yields no successors. Stage
// timeouts derive from the runner's lifecycle ctx, so shutdown cancels
// in-flight frames too.
func (r *Runner) applyStage(ctx context.Context, st stage, f *pb.Frame) []*pb.Frame {
	req := &pb.TransformRequest{
		Payload:      f.Value,
		ContentType:  f.ContentType,
		SourceOffset: offsetString(f.Checkpoint),
	}

	for attempt := 0; ; attempt++ {
		start := time.Now()
		tctx, cancel := context.WithTimeout(ctx, st.timeout)
		resp, err := st.client.Transform(tctx, req)
		cancel()

		switch {
		case err == nil && resp.GetStatus() == pb.Status_OK:
			telemetry.ObserveTransform(st.name, "ok", time.Since(start))
			out := make([]*pb.Frame, 0, len(resp.Events))
			for _, ev := range resp.Events {
				out = append(out, &pb.Frame{
					Key:         f.Key,
					Value:       ev.Value,
					ContentType: f.ContentType,
					Checkpoint:  f.Checkpoint,
				})
			}
			return out

		case err == nil && resp.GetStatus() == pb.Status_DROP:
			telemetry.ObserveTransform(st.name, "drop", time.Since(start))
			r.Ack(f.Checkpoint)
			return nil

		default:
			telemetry.ObserveTransform(st.name, "error", time.Since(start))
			if attempt < st.attempts && ctx.Err() == nil {
				time.Sleep(st.backoff)
				continue
			}
			if err == nil {
				err = errors.New(resp.GetError())
			}
			logging.L().Error("stage abandoned frame",
				"stage", st.name, "offset", req.SourceOffset, "err", err)
			r.Ack(f.Checkpoint)
			return nil
		}
	}
}

func (r *Runner) Start(ctx context.Context) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	go func() {
		_ = r.source.Run(ctx, func(f *pb.Frame) error { return r.pushFrame(ctx, f) })
	}()
	return nil
}

func (r *Runner) Close() error {
	var errs []error
	if r.source != nil {
		errs = append(errs, r.source.Close())
	}
	for _, st := range r.stages {
		errs = append(errs, st.client.Close())
	}
	for _, s := range r.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

func offsetString(tok *pb.CheckpointToken) string {
	k := tok.GetKafka()
	if k == nil {
		return ""
	}
	return fmt.Sprintf("%s[%d]@%d", k.Topic, k.Partition, k.Offset)
}
