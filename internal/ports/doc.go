// Package ports holds the interfaces the layers meet at. Handlers call the
// content and dashboard services; the services call the CMS, document store
// and presence stream through client ports; readiness goes through the
// health registry. Mocks for every interface live in the mocks package.
package ports
