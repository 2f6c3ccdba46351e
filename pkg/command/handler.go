package command

import (
	"context"
	"fmt"

	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
)

// EntityHandlerConfig describes the common single-stream handler shape: load
// the entity's CMS, run the decider against it, report the decision.
type EntityHandlerConfig struct {
	StreamType string

	// StreamID extracts the target stream id from the command payload.
	StreamID func(payload map[string]any) (string, error)

	Decide      decider.Func
	PreValidate decider.PreValidate

	// CreatesEntity handlers accept a missing CMS row (the decider sees nil
	// state) and insert the decision's StateUpdate as the full initial
	// state. Non-creating handlers reject missing entities with
	// NotFoundCode.
	CreatesEntity bool
	NotFoundCode  string
	StateVersion  int
}

// NewEntityHandler builds a Handler from the config.
func NewEntityHandler(cfg EntityHandlerConfig) Handler {
	return func(ctx context.Context, tx eventstore.Store, cmd decider.Command, dctx decider.Context) (*HandlerResult, error) {
		streamID, err := cfg.StreamID(cmd.Payload)
		if err != nil {
			return nil, fmt.Errorf("resolve stream id for %s: %w", cmd.CommandType, err)
		}

		if cfg.PreValidate != nil {
			if d := cfg.PreValidate(dctx, cmd); d != nil {
				return &HandlerResult{Decision: *d, StreamID: streamID}, nil
			}
		}

		cms, err := tx.LoadCMS(ctx, cfg.StreamType, streamID)
		if err != nil {
			return nil, err
		}
		if cms == nil && !cfg.CreatesEntity {
			code := cfg.NotFoundCode
			if code == "" {
				code = "NOT_FOUND"
			}
			return &HandlerResult{
				Decision: decider.Rejected(code,
					fmt.Sprintf("%s %q not found", cfg.StreamType, streamID),
					map[string]any{"streamId": streamID}),
				StreamID: streamID,
			}, nil
		}

		var state map[string]any
		baseVersion := 0
		if cms != nil {
			state = cms.State
			baseVersion = cms.Version
		}

		d := cfg.Decide(state, cmd, dctx)

		hr := &HandlerResult{Decision: d, StreamID: streamID, BaseVersion: baseVersion}
		if cfg.CreatesEntity && cms == nil && d.IsSuccess() {
			hr.State = d.StateUpdate
			hr.StateVersion = cfg.StateVersion
		}
		return hr, nil
	}
}
