package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pinbook/internal/adapter"
	"pinbook/internal/logger"
	"pinbook/internal/mock"
)

func newTestDictationSvc(t *testing.T, ctrl *gomock.Controller) (
	*DictationService,
	*mock.MockSpeechRecognizer,
	*mock.MockTextCleaner,
) {
	t.Helper()

	recognizer := mock.NewMockSpeechRecognizer(ctrl)
	cleaner := mock.NewMockTextCleaner(ctrl)
	return NewDictationService(recognizer, cleaner, logger.Nop()), recognizer, cleaner
}

func TestDictationService_Dictate_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, cleaner := newTestDictationSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		recognizer.EXPECT().Available().Return(true),
		recognizer.EXPECT().Capture(ctx).DoAndReturn(func(context.Context) (string, error) {
			assert.Equal(t, DictationListening, svc.State())
			return "えーと 明日の14時", nil
		}),
		cleaner.EXPECT().Clean(ctx, "えーと 明日の14時").DoAndReturn(func(context.Context, string) string {
			assert.Equal(t, DictationCleaning, svc.State())
			return "明日の14時。"
		}),
	)

	got, err := svc.Dictate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "明日の14時。", got)
	assert.Equal(t, DictationIdle, svc.State())
}

func TestDictationService_Dictate_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, _ := newTestDictationSvc(t, ctrl)

	recognizer.EXPECT().Available().Return(false)

	_, err := svc.Dictate(context.Background())
	assert.ErrorIs(t, err, adapter.ErrSpeechUnsupported)
	assert.Equal(t, DictationIdle, svc.State())
}

func TestDictationService_Dictate_CanceledWithoutTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, _ := newTestDictationSvc(t, ctrl)
	ctx := context.Background()

	recognizer.EXPECT().Available().Return(true)
	recognizer.EXPECT().Capture(ctx).Return("", context.Canceled)

	_, err := svc.Dictate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, DictationIdle, svc.State())
}

func TestDictationService_Dictate_NoSpeech(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, _ := newTestDictationSvc(t, ctrl)
	ctx := context.Background()

	recognizer.EXPECT().Available().Return(true)
	recognizer.EXPECT().Capture(ctx).Return("", adapter.ErrNoSpeech)

	_, err := svc.Dictate(ctx)
	assert.ErrorIs(t, err, adapter.ErrNoSpeech)
	assert.Equal(t, DictationIdle, svc.State())
}

func TestDictationService_Dictate_CleanerFallbackHandledByAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, cleaner := newTestDictationSvc(t, ctrl)
	ctx := context.Background()

	// The cleaner contract is fail-open: on failure it returns its input.
	recognizer.EXPECT().Available().Return(true)
	recognizer.EXPECT().Capture(ctx).Return("raw transcript", nil)
	cleaner.EXPECT().Clean(ctx, "raw transcript").Return("raw transcript")

	got, err := svc.Dictate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "raw transcript", got)
}

func TestDictationService_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, recognizer, _ := newTestDictationSvc(t, ctrl)

	recognizer.EXPECT().Available().Return(true)
	assert.True(t, svc.Available())
}

func TestAppendNote(t *testing.T) {
	assert.Equal(t, "dictated", AppendNote("", "dictated"))
	assert.Equal(t, "existing\ndictated", AppendNote("existing", "dictated"))
	assert.Equal(t, "existing", AppendNote("existing", "   "))
	assert.Equal(t, "dictated", AppendNote("   ", "dictated"))
}
