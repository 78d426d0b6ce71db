// Package result содержит обобщённый контейнер успеха/ошибки,
// которым слои обмениваются вместо паники через границы.
package result

// Result хранит ровно один из вариантов: значение (Ok) или ошибку (Err).
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok оборачивает успешное значение.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err оборачивает ошибку. Переданное значение сохраняется без изменений.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk сообщает, какой вариант заполнен. Его нужно проверить до Value/Err.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Value возвращает значение варианта Ok; для Err нулевое значение T.
func (r Result[T]) Value() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.value
}

// Err возвращает ошибку варианта Err; для Ok nil.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Unwrap раскладывает Result в привычную для Go пару (значение, ошибка).
func (r Result[T]) Unwrap() (T, error) {
	return r.Value(), r.Err()
}

// Match вызывает ровно одну из функций в зависимости от варианта.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}
