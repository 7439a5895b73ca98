package commands

import (
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("errands/commands")

// TransitionRecorder observes the outcome of every transition attempt. Kind is
// empty on success.
type TransitionRecorder interface {
	ObserveTransition(orientation workflow.Orientation, target string, kind errs.Kind)
}

type nopTransitionRecorder struct{}

func (nopTransitionRecorder) ObserveTransition(workflow.Orientation, string, errs.Kind) {}

func transitionAttributes(orientation workflow.Orientation, requestID, target string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("errand.orientation", orientation.String()),
		attribute.String("errand.request_id", requestID),
		attribute.String("errand.target_status", target),
	)
}

func finishTransition(
	span trace.Span,
	recorder TransitionRecorder,
	orientation workflow.Orientation,
	target string,
	err error,
) {
	kind := errs.KindOf(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(kind))
		span.SetAttributes(attribute.String("errand.error_kind", string(kind)))
	}
	recorder.ObserveTransition(orientation, target, kind)
	span.End()
}

func recorderOrNop(recorder TransitionRecorder) TransitionRecorder {
	if recorder == nil {
		return nopTransitionRecorder{}
	}
	return recorder
}
