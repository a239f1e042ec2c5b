package gallery

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/metrics"
	"github.com/vango-dev/mdc/pkg/render"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget/remote"
)

// session is one live gallery page. All state is owned by the goroutine
// running process; the reader only decodes messages.
type session struct {
	conn    *remote.Conn
	tk      *remote.Toolkit
	metrics *metrics.Collector
	logger  *slog.Logger

	gallery  *Gallery
	root     *component.Root[*Gallery]
	renderer *render.Renderer
	handlers map[string]any
}

func newSession(conn *remote.Conn, collector *metrics.Collector, logger *slog.Logger) *session {
	return &session{
		conn:     conn,
		tk:       remote.NewToolkit(remote.WithLogger(logger)),
		metrics:  collector,
		logger:   logger,
		gallery:  New(),
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
}

// run mounts the page, sends it and processes client messages until the
// connection or ctx ends.
func (s *session) run(ctx context.Context, opts ...component.Option) error {
	opts = append([]component.Option{
		component.WithToolkit(s.tk),
		component.WithLogger(s.logger),
		component.WithName("gallery"),
		binding.WithObserver(s.metrics),
	}, opts...)

	root, err := component.Mount(ctx, Page, s.gallery, opts...)
	if err != nil {
		return err
	}
	s.root = root
	defer func() {
		if err := s.root.Unmount(); err != nil {
			s.logger.Warn("unmount failed", "error", err)
		}
		s.tk.Close()
	}()
	if err := s.flush(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	msgs := make(chan remote.Message)
	g.Go(func() error {
		defer close(msgs)
		for {
			m, err := s.conn.Read()
			if mdcerrors.HasCode(err, "E120") {
				s.logger.Warn("dropping malformed message", "error", err)
				s.metrics.WebSocketError("decode")
				continue
			}
			if err != nil {
				return err
			}
			select {
			case msgs <- m:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer s.conn.Close()
		for {
			select {
			case <-ctx.Done():
				return nil
			case m, ok := <-msgs:
				if !ok {
					return nil
				}
				s.metrics.Message(string(m.Type))
				if err := s.handle(m); err != nil {
					return err
				}
			}
		}
	})
	return g.Wait()
}

// handle applies one client message and pushes the resulting commands.
func (s *session) handle(m remote.Message) error {
	switch m.Type {
	case remote.MsgDOM:
		h, ok := s.handlers[m.HID+"_on"+m.Event]
		if !ok {
			s.logger.Debug("no handler", "hid", m.HID, "event", m.Event)
			return nil
		}
		value := ""
		if m.Value != nil {
			value = fmt.Sprint(m.Value)
		}
		vdom.Dispatch(h, vdom.Event{Type: m.Event, Target: m.HID, Value: value})

	case remote.MsgEvent:
		if err := s.tk.Receive(m); err != nil {
			// Events can race a destroy that is still in flight.
			s.logger.Debug("event dropped", "id", m.ID, "name", m.Name, "error", err)
			return nil
		}

	default:
		if err := s.tk.Receive(m); err != nil {
			s.logger.Warn("message rejected", "type", m.Type, "error", err)
		}
		return nil
	}

	if err := s.root.Update(s.gallery); err != nil {
		s.logger.Error("update failed", "error", err)
	}
	return s.flush()
}

// flush renders the committed tree and sends it with the queued commands.
func (s *session) flush() error {
	s.renderer.Reset()
	html, err := s.renderer.RenderToString(s.root.Tree())
	if err != nil {
		return err
	}
	s.handlers = s.renderer.Handlers()
	if err := s.conn.Send(s.tk.Flush(html)...); err != nil {
		s.metrics.WebSocketError("write")
		return err
	}
	return nil
}
