package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 把响应体解析成 Result[T]
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() JSONResponseRecorder[T] {
	return JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r JSONResponseRecorder[T]) MustScan() Result[T] {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	if err != nil {
		panic(err)
	}
	return res
}
