package types

// x/wormhole module event types
const (
	EventTypeGuardianSetUpdate     = "guardian_set_update"
	EventTypeConsensusSetUpdate    = "consensus_set_update"
	EventTypeGovernanceVAAExecuted = "governance_vaa_executed"

	AttributeKeyOldIndex = "old_index"
	AttributeKeyNewIndex = "new_index"
	AttributeKeyAction   = "action"
	AttributeKeyDigest   = "digest"
	AttributeKeyEmitter  = "emitter"
	AttributeKeySequence = "sequence"
)
