package avi

import "github.com/DanielPopoola/avi-gateway/internal/domain"

// Endpoint tables for the Address Validation International service. They are
// fixed for the process lifetime; only the live/trial choice varies per call.
var (
	RESTEndpoints = domain.EndpointSet{
		Live:   "https://sws.serviceobjects.com/avi/api.svc/json/",
		Backup: "https://swsbackup.serviceobjects.com/avi/api.svc/json/",
		Trial:  "https://trial.serviceobjects.com/avi/api.svc/json/",
	}

	SOAPEndpoints = domain.EndpointSet{
		Live:   "https://sws.serviceobjects.com/avi/soap.svc",
		Backup: "https://swsbackup.serviceobjects.com/avi/soap.svc",
		Trial:  "https://trial.serviceobjects.com/avi/soap.svc",
	}
)

// EndpointsFor returns the table of a protocol.
func EndpointsFor(protocol domain.Protocol) domain.EndpointSet {
	if protocol == domain.ProtocolSOAP {
		return SOAPEndpoints
	}
	return RESTEndpoints
}
