package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/story-editor/internal/platform/health"
	"github.com/jsamuelsen11/story-editor/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("CheckAll() = nil, want empty map")
	}
	if len(results) != 0 {
		t.Errorf("CheckAll() has %d entries, want 0", len(results))
	}
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	r := health.New()
	r.Register(checker(t, "story-store", nil))
	r.Register(checker(t, "render", refused))

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("CheckAll() has %d entries, want 2", len(results))
	}
	if results["story-store"] != nil {
		t.Errorf("story-store = %v, want nil", results["story-store"])
	}
	if !errors.Is(results["render"], refused) {
		t.Errorf("render = %v, want %v", results["render"], refused)
	}
}

func TestCheckAll_DuplicateNamesReportFailure(t *testing.T) {
	t.Parallel()

	failure := errors.New("second failure")

	r := health.New()
	r.Register(checker(t, "story-store", nil))
	r.Register(checker(t, "story-store", failure))
	r.Register(checker(t, "story-store", nil))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("CheckAll() has %d entries, want 1", len(results))
	}
	if !errors.Is(results["story-store"], failure) {
		t.Errorf("story-store = %v, want %v", results["story-store"], failure)
	}
}

func TestCheckAll_CanceledContextReachesChecker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("render")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	if got := r.CheckAll(ctx)["render"]; !errors.Is(got, context.Canceled) {
		t.Errorf("render = %v, want context.Canceled", got)
	}
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("slow")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "fast", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll() took %v, want it bounded by the check timeout", elapsed)
	}
	if !errors.Is(results["slow"], context.DeadlineExceeded) {
		t.Errorf("slow = %v, want context.DeadlineExceeded", results["slow"])
	}
	if results["fast"] != nil {
		t.Errorf("fast = %v, want nil", results["fast"])
	}
}

func TestCheckAll_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
