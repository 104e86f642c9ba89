package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"mockedapi/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w       *httptest.ResponseRecorder
		req     *http.Request
		seenID  string
		handler http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("PUT", "/user?username=testuser", nil)
		seenID = ""
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.RequestIDFromContext(r.Context())
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("bad"))
		})
	})

	Describe("RequestID", func() {
		JustBeforeEach(func() {
			middleware.NewRequestIDMiddleware().RequestID(handler).ServeHTTP(w, req)
		})

		When("no request id is sent", func() {
			It("should generate one and expose it", func() {
				Expect(seenID).NotTo(BeEmpty())
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
			})
		})

		When("the caller sends a request id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "abc-123")
			})

			It("should reuse it", func() {
				Expect(seenID).To(Equal("abc-123"))
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
			})
		})
	})

	Describe("RequestIDFromContext", func() {
		It("should be empty outside the middleware", func() {
			Expect(middleware.RequestIDFromContext(req.Context())).To(BeEmpty())
		})
	})

	Describe("Logging", func() {
		var logs *observer.ObservedLogs

		BeforeEach(func() {
			obsCore, observed := observer.New(zap.InfoLevel)
			logs = observed
			logger := zap.New(obsCore).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(handler)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
			hdlr.ServeHTTP(w, req)
		})

		It("should pass the response through", func() {
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(Equal("bad"))
		})

		It("should log the request with its outcome", func() {
			Expect(logs.Len()).To(Equal(1))
			entry := logs.All()[0]
			Expect(entry.Message).To(Equal("request served"))

			fields := entry.ContextMap()
			Expect(fields).To(HaveKeyWithValue("method", "PUT"))
			Expect(fields).To(HaveKeyWithValue("path", "/user"))
			Expect(fields).To(HaveKeyWithValue("query", "username=testuser"))
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusBadRequest)))
			Expect(fields).To(HaveKeyWithValue("status_class", "4xx"))
			Expect(fields).To(HaveKeyWithValue("rsp_body_len", int64(3)))
			Expect(fields).To(HaveKeyWithValue("request_id", seenID))
		})
	})
})
