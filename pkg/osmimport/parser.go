package osmimport

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/liftmap/spotquery/pkg/concurrent"
	"github.com/liftmap/spotquery/pkg/spot"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// amenity / highway tag values marking a node as a plausible pickup spot.
var acceptedAmenities = map[string]bool{
	"fuel":             true,
	"parking":          true,
	"parking_entrance": true,
	"bus_station":      true,
	"ferry_terminal":   true,
}

var acceptedHighways = map[string]bool{
	"services":  true,
	"rest_area": true,
	"bus_stop":  true,
}

type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	return &Parser{log: log}
}

// Parse scans an openstreetmap pbf extract and converts the accepted POI
// nodes into spot records. conversion fans out over a worker pool; the scan
// itself must stay sequential.
func (p *Parser) Parse(inputFile string) ([]*spot.Spot, error) {
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	nodes := make([]*osm.Node, 0)
	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()

		tipe := o.ObjectID().Type()

		switch tipe {
		case osm.TypeNode:
			{
				node := o.(*osm.Node)
				if !acceptOsmNode(node) {
					continue
				}
				if (countNodes+1)%50000 == 0 {
					p.log.Sugar().Infof("scanning openstreetmap poi nodes: %d...", countNodes+1)
				}
				countNodes++
				nodes = append(nodes, node)
			}
		case osm.TypeWay:
			{
			}
		case osm.TypeRelation:
			{
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p.log.Sugar().Infof("converting %d poi nodes to spots...", len(nodes))

	wp := concurrent.NewWorkerPool[*osm.Node, *spot.Spot](runtime.NumCPU(), len(nodes))
	wp.Start(nodeToSpot)
	for _, node := range nodes {
		wp.AddJob(node)
	}
	wp.Close()
	wp.Wait()

	spots := make([]*spot.Spot, 0, len(nodes))
	for s := range wp.CollectResults() {
		spots = append(spots, s)
	}
	return spots, nil
}

func acceptOsmNode(node *osm.Node) bool {
	tags := node.TagMap()
	if acceptedAmenities[tags["amenity"]] {
		return true
	}
	return acceptedHighways[tags["highway"]]
}

func nodeToSpot(node *osm.Node) *spot.Spot {
	tags := node.TagMap()

	amenities := make([]string, 0, 2)
	if a := tags["amenity"]; a != "" {
		amenities = append(amenities, a)
	}
	if h := tags["highway"]; h != "" {
		amenities = append(amenities, h)
	}

	s := &spot.Spot{
		ID:          fmt.Sprintf("osm-%d", node.ID),
		Name:        tags["name"],
		City:        tags["addr:city"],
		Description: tags["description"],
		Country:     tags["addr:country"],
		Amenities:   amenities,
		Created:     node.Timestamp.UnixMilli(),
	}
	s.SetCoordinate(node.Lat, node.Lon)
	return s
}
