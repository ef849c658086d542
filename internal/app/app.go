package app

import (
	"dispatch/internal/handlers/kafka-consumer/parcel_status_changed"
	"dispatch/internal/handlers/rest/account_delete"
	"dispatch/internal/handlers/rest/account_get"
	"dispatch/internal/handlers/rest/account_put"
	"dispatch/internal/handlers/rest/accounts_get"
	"dispatch/internal/handlers/rest/login_post"
	"dispatch/internal/handlers/rest/parcel_delete"
	"dispatch/internal/handlers/rest/parcel_get"
	"dispatch/internal/handlers/rest/parcel_post"
	"dispatch/internal/handlers/rest/parcel_put"
	"dispatch/internal/handlers/rest/parcel_status_put"
	"dispatch/internal/handlers/rest/parcels_get"
	"dispatch/internal/handlers/rest/register_post"
	"dispatch/internal/handlers/rest/route_assign_post"
	"dispatch/internal/handlers/rest/route_delete"
	"dispatch/internal/handlers/rest/route_get"
	"dispatch/internal/handlers/rest/route_post"
	"dispatch/internal/handlers/rest/route_put"
	"dispatch/internal/handlers/rest/routes_get"
	"dispatch/pkg/background"
	"dispatch/pkg/token"
)

type AuthApplication struct {
	ServiceAccount    ServiceAccount
	TokenIssuer       *token.Issuer
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	register_post.Service
	login_post.Service
	account_get.Service
	accounts_get.Service
	account_put.Service
	account_delete.Service
}

type RouteApplication struct {
	ServiceRoute ServiceRoute
	TokenIssuer  *token.Issuer
}

type ServiceRoute interface {
	route_post.Service
	route_get.Service
	routes_get.Service
	route_put.Service
	route_assign_post.Service
	route_delete.Service
}

type ParcelApplication struct {
	ServiceParcel ServiceParcel
	TokenIssuer   *token.Issuer
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcels_get.Service
	parcel_put.Service
	parcel_status_put.Service
	parcel_delete.Service
}

type WorkerApplication struct {
	ServiceParcel parcel_status_changed.Service
}
