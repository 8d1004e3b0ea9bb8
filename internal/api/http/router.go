package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler, secret []byte) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	handler.RegisterRoutes(r, secret)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	logrus.Infof("Foodcourt backend starting on %s", addr)
	logrus.Fatal(http.ListenAndServe(addr, handler))
}
