package types

// ResourceStatus is the discriminant of a Resource
type ResourceStatus int

const (
	ResourceLoading ResourceStatus = iota
	ResourceSuccess
	ResourceError
)

// Resource is the render state of an asynchronously loaded value:
// Loading, Success carrying the data, or Error carrying a message.
type Resource[T any] struct {
	Status  ResourceStatus
	Data    T
	Message string
}

// LoadingResource returns the loading state
func LoadingResource[T any]() Resource[T] {
	return Resource[T]{Status: ResourceLoading}
}

// SuccessResource returns a success state carrying data
func SuccessResource[T any](data T) Resource[T] {
	return Resource[T]{Status: ResourceSuccess, Data: data}
}

// ErrorResource returns an error state carrying a display message
func ErrorResource[T any](message string) Resource[T] {
	return Resource[T]{Status: ResourceError, Message: message}
}

// IsLoading reports whether the value is still being fetched
func (r Resource[T]) IsLoading() bool { return r.Status == ResourceLoading }

// IsSuccess reports whether the value loaded
func (r Resource[T]) IsSuccess() bool { return r.Status == ResourceSuccess }

// IsError reports whether loading failed
func (r Resource[T]) IsError() bool { return r.Status == ResourceError }
