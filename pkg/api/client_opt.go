package api

import (
	"net/http"
)

type basicAuthOpt struct {
	username string
	password string
}

func BasicAuth(username, password string) *basicAuthOpt {
	return &basicAuthOpt{username: username, password: password}
}

func (opt *basicAuthOpt) Do(client defaultClient, req *http.Request) {
	req.SetBasicAuth(opt.username, opt.password)
}

type bearerOpt struct {
	token string
}

func Bearer(token string) *bearerOpt {
	return &bearerOpt{token: "Bearer " + token}
}

func (opt *bearerOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", opt.token)
}
