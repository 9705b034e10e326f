package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"market/pkg/logger"
)

var (
	ErrAlreadyStarted = errors.New("poller already started")
	ErrInvalidTTL     = errors.New("invalid TTL")
)

// Task определяет фоновую задачу, результат которой периодически публикуется.
type Task[T any] interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет один опрос.
	Do(context.Context) (T, error)

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Poller периодически выполняет Task и отдает результаты в канал с одним потребителем.
//
// Поведение:
//  1. Start выполняет первый опрос синхронно ("прогрев"), затем запускает горутину с тикером.
//     Ошибка прогрева не фатальна: она логируется и отражается в LastFailed.
//  2. В канале хранится не больше одного результата. Если потребитель не успел забрать
//     предыдущий, он заменяется новым: снимок всегда полный, промежуточные не нужны.
//  3. Ошибки и паники опроса логируются и записываются во флаг LastFailed, наружу не уходят.
//  4. Stop или отмена контекста останавливают горутину и закрывают канал.
type Poller[T any] struct {
	log  handlerLogger
	task Task[T]

	out     chan T
	refresh chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	lastFailed atomic.Bool
}

func NewPoller[T any](log handlerLogger, task Task[T]) *Poller[T] {
	return &Poller[T]{
		log:     log.With(logger.NewField("task", task.Info())),
		task:    task,
		out:     make(chan T, 1),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (p *Poller[T]) Start(ctx context.Context) (<-chan T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil, ErrAlreadyStarted
	}

	ttl := p.task.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTTL, ttl)
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.started = true

	p.log.Info("Initializing")
	p.poll(runCtx)

	p.log.Info("Starting periodic execution", logger.NewField("TTL", ttl))
	go p.run(runCtx, ttl)

	return p.out, nil
}

// Stop идемпотентен и ждет завершения горутины.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	started := p.started
	cancel := p.cancel
	p.mu.Unlock()

	if !started {
		return
	}
	cancel()
	<-p.done
}

// Refresh просит выполнить опрос вне расписания. Не блокируется:
// несколько запросов подряд схлопываются в один.
func (p *Poller[T]) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// LastFailed - результат последнего опроса.
func (p *Poller[T]) LastFailed() bool {
	return p.lastFailed.Load()
}

func (p *Poller[T]) run(ctx context.Context, ttl time.Duration) {
	defer close(p.done)
	defer close(p.out)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Warn("Stopping task (context cancelled)")
			return
		case <-ticker.C:
			p.poll(ctx)
		case <-p.refresh:
			p.poll(ctx)
			ticker.Reset(ttl)
		}
	}
}

func (p *Poller[T]) poll(ctx context.Context) {
	start := time.Now()

	value, err := p.doSafely(ctx)
	TaskDuration.WithLabelValues(p.task.Info()).Observe(time.Since(start).Seconds())

	if err != nil {
		p.lastFailed.Store(true)
		TaskRunsTotal.WithLabelValues(p.task.Info(), "failed").Inc()
		if ctx.Err() == nil {
			p.log.Error("Background task failed", logger.NewField("error", err))
		}
		return
	}

	p.lastFailed.Store(false)
	TaskRunsTotal.WithLabelValues(p.task.Info(), "ok").Inc()
	p.publish(value)
}

func (p *Poller[T]) doSafely(ctx context.Context) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("task panic: %v", r)

			p.log.Error("Background task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()

	return p.task.Do(ctx)
}

// publish кладет результат в канал, вытесняя неполученный предыдущий.
// Отправитель один, поэтому после вычитывания место в буфере гарантировано.
func (p *Poller[T]) publish(value T) {
	for {
		select {
		case p.out <- value:
			return
		default:
		}

		select {
		case <-p.out:
		default:
		}
	}
}
