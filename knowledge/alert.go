package knowledge

import "github.com/nexusmind/nexus/graph"

// Node ids of the alert pipeline's two fixed graphs.
const (
	// Stage 1: signal analysis.
	NodeRadarContact      = "radar_contact"
	NodeAcousticSignature = "acoustic_signature"
	NodeTrajectory        = "trajectory"
	NodeLaunchSite        = "launch_site"

	// Stage 2: synthesis.
	NodeWill             = "will"
	NodeThreatAssessment = "threat_assessment"
	NodeAlertDispatch    = "alert_dispatch"
)

// SignalAnalysisGraph builds the fixed stage-1 graph: raw sensor channels
// linked around the radar contact. Energy enters at the radar contact node.
func SignalAnalysisGraph(optFns ...func(o *graph.Options)) *graph.Graph {
	g := graph.New(optFns...)
	g.Metadata["name"] = "signal-analysis"

	must(g.AddNode(NodeRadarContact, 1.0, func(o *graph.NodeOptions) { o.Domain = "sensor" }))
	must(g.AddNode(NodeAcousticSignature, 0.8, func(o *graph.NodeOptions) { o.Domain = "sensor" }))
	must(g.AddNode(NodeTrajectory, 1.2, func(o *graph.NodeOptions) { o.Domain = "analysis" }))
	must(g.AddNode(NodeLaunchSite, 0.6, func(o *graph.NodeOptions) { o.Domain = "intel" }))

	mustErr(g.Connect(NodeRadarContact, NodeAcousticSignature))
	mustErr(g.Connect(NodeRadarContact, NodeTrajectory))
	mustErr(g.Connect(NodeTrajectory, NodeLaunchSite))

	return g
}

// SynthesisGraph builds the fixed stage-2 graph. The will node is the fixed
// high-energy anchor of the synthesis stage; the threat assessment node
// receives the high/low branch energy.
func SynthesisGraph(optFns ...func(o *graph.Options)) *graph.Graph {
	g := graph.New(optFns...)
	g.Metadata["name"] = "synthesis"

	must(g.AddNode(NodeWill, 1.0, func(o *graph.NodeOptions) { o.Domain = "synthesis" }))
	must(g.AddNode(NodeThreatAssessment, 1.0, func(o *graph.NodeOptions) { o.Domain = "synthesis" }))
	must(g.AddNode(NodeAlertDispatch, 1.0, func(o *graph.NodeOptions) { o.Domain = "dispatch" }))

	mustErr(g.Connect(NodeWill, NodeThreatAssessment))
	mustErr(g.Connect(NodeThreatAssessment, NodeAlertDispatch))

	return g
}
