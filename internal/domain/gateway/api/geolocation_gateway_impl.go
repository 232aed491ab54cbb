package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/http"
)

// ErrGeolocationDisabled is reported by the disabled gateway.
var ErrGeolocationDisabled = errors.New("geolocation disabled")

// ipGeolocationGateway resolves the position of the caller's public IP
type ipGeolocationGateway struct {
	httpClient *http.Client
}

// NewGeolocationGateway creates a GeolocationGateway backed by an ip-api.com
// compatible endpoint
func NewGeolocationGateway(baseUrl string, clientOptions http.ClientOptions) GeolocationGateway {
	return &ipGeolocationGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// CurrentPosition asks the geolocation API for the position of clientIP
func (g *ipGeolocationGateway) CurrentPosition(ctx context.Context, clientIP string) entity.PositionResult {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(lookupPath(clientIP)).
		WithQueryParams(map[string]string{"fields": "status,message,city,lat,lon"}).
		WithSuccessResp(&external.GeolocationResponse{}).
		Execute()

	if err != nil {
		return entity.PositionFailed(fmt.Errorf("geolocation request failed: %w", err))
	}

	response, ok := successResp.(*external.GeolocationResponse)
	if !ok || response == nil {
		return entity.PositionFailed(errors.New("geolocation lookup returned no body"))
	}
	if response.Status != "success" {
		return entity.PositionFailed(fmt.Errorf("geolocation lookup failed: %s", response.Message))
	}

	return entity.PositionOf(entity.Coordinates{Latitude: response.Lat, Longitude: response.Lon})
}

// lookupPath is /json/{ip} for public addresses. Loopback and private
// addresses cannot be located, so the lookup falls back to the server's own address.
func lookupPath(clientIP string) string {
	ip := net.ParseIP(clientIP)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return "/json"
	}
	return "/json/" + url.PathEscape(ip.String())
}

type disabledGeolocationGateway struct{}

// NewDisabledGeolocationGateway creates a gateway whose requests always fail
func NewDisabledGeolocationGateway() GeolocationGateway {
	return disabledGeolocationGateway{}
}

func (disabledGeolocationGateway) CurrentPosition(context.Context, string) entity.PositionResult {
	return entity.PositionFailed(ErrGeolocationDisabled)
}
