// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package circuit

import (
	"github.com/consensys/go-publicinputs/pkg/constants"
	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// PUBLIC_CIRCUIT_PUBLIC_INPUTS is the type name used in error messages.
const PUBLIC_CIRCUIT_PUBLIC_INPUTS = "PublicCircuitPublicInputs"

// PublicCircuitPublicInputs captures everything a verifier observes about the
// execution of a single public function call: its context, the digests of its
// arguments and return values, every side effect it produced (as fixed-capacity
// arrays), the historical state it ran against, and its gas accounting.
//
// Records are values: they are never mutated after construction, and two
// records are equal iff they are == equal.  The zero value is the empty record.
type PublicCircuitPublicInputs struct {
	// Current call context.
	CallContext CallContext
	// Hash of the arguments of the call.
	ArgsHash field.Element
	// Hash of the return values of the call.
	ReturnsHash field.Element
	// Note hash tree read requests executed during the call.
	NoteHashReadRequests [constants.MAX_NOTE_HASH_READ_REQUESTS_PER_CALL]TreeLeafReadRequest
	// Nullifier read requests executed during the call.
	NullifierReadRequests [constants.MAX_NULLIFIER_READ_REQUESTS_PER_CALL]ReadRequest
	// Nullifier non-existent read requests executed during the call.
	NullifierNonExistentReadRequests [constants.MAX_NULLIFIER_NON_EXISTENT_READ_REQUESTS_PER_CALL]ReadRequest
	// L1 to L2 message read requests executed during the call.
	L1ToL2MsgReadRequests [constants.MAX_L1_TO_L2_MSG_READ_REQUESTS_PER_CALL]TreeLeafReadRequest
	// Contract storage update requests executed during the call.
	ContractStorageUpdateRequests [constants.MAX_PUBLIC_DATA_UPDATE_REQUESTS_PER_CALL]ContractStorageUpdateRequest
	// Contract storage reads executed during the call.
	ContractStorageReads [constants.MAX_PUBLIC_DATA_READS_PER_CALL]ContractStorageRead
	// Public calls made by this call.
	PublicCallRequests [constants.MAX_ENQUEUED_CALLS_PER_CALL]PublicInnerCallRequest
	// Note hashes created by the call.
	NoteHashes [constants.MAX_NOTE_HASHES_PER_CALL]NoteHash
	// Nullifiers created by the call.
	Nullifiers [constants.MAX_NULLIFIERS_PER_CALL]Nullifier
	// L2 to L1 messages sent by the call.
	L2ToL1Msgs [constants.MAX_L2_TO_L1_MSGS_PER_CALL]L2ToL1Message
	// Side-effect counter when this call started.
	StartSideEffectCounter field.Element
	// Side-effect counter when this call finished.
	EndSideEffectCounter field.Element
	// Public logs emitted by the call.
	PublicLogs [constants.MAX_PUBLIC_LOGS_PER_CALL]PublicLog
	// Header of the block whose state the call executed against.  This is a
	// block prior to the one including the transaction.
	HistoricalHeader BlockHeader
	// Global variables of the block including the transaction.
	GlobalVariables GlobalVariables
	// Address of the prover.
	ProverAddress AztecAddress
	// Indicates whether the call reverted.
	RevertCode RevertCode
	// Gas available when the call started.
	StartGasLeft Gas
	// Gas left when the call finished.
	EndGasLeft Gas
	// Transaction fee.  Zero in all phases except teardown.
	TransactionFee field.Element
}

// New constructs a record from every field, given positionally in declaration
// order.  Values are not checked here: use NewRevertCode to construct a checked
// revert code, and note ToFields rejects records holding undefined ones.
func New(
	callContext CallContext,
	argsHash field.Element,
	returnsHash field.Element,
	noteHashReadRequests [constants.MAX_NOTE_HASH_READ_REQUESTS_PER_CALL]TreeLeafReadRequest,
	nullifierReadRequests [constants.MAX_NULLIFIER_READ_REQUESTS_PER_CALL]ReadRequest,
	nullifierNonExistentReadRequests [constants.MAX_NULLIFIER_NON_EXISTENT_READ_REQUESTS_PER_CALL]ReadRequest,
	l1ToL2MsgReadRequests [constants.MAX_L1_TO_L2_MSG_READ_REQUESTS_PER_CALL]TreeLeafReadRequest,
	contractStorageUpdateRequests [constants.MAX_PUBLIC_DATA_UPDATE_REQUESTS_PER_CALL]ContractStorageUpdateRequest,
	contractStorageReads [constants.MAX_PUBLIC_DATA_READS_PER_CALL]ContractStorageRead,
	publicCallRequests [constants.MAX_ENQUEUED_CALLS_PER_CALL]PublicInnerCallRequest,
	noteHashes [constants.MAX_NOTE_HASHES_PER_CALL]NoteHash,
	nullifiers [constants.MAX_NULLIFIERS_PER_CALL]Nullifier,
	l2ToL1Msgs [constants.MAX_L2_TO_L1_MSGS_PER_CALL]L2ToL1Message,
	startSideEffectCounter field.Element,
	endSideEffectCounter field.Element,
	publicLogs [constants.MAX_PUBLIC_LOGS_PER_CALL]PublicLog,
	historicalHeader BlockHeader,
	globalVariables GlobalVariables,
	proverAddress AztecAddress,
	revertCode RevertCode,
	startGasLeft Gas,
	endGasLeft Gas,
	transactionFee field.Element,
) PublicCircuitPublicInputs {
	return PublicCircuitPublicInputs{
		callContext,
		argsHash,
		returnsHash,
		noteHashReadRequests,
		nullifierReadRequests,
		nullifierNonExistentReadRequests,
		l1ToL2MsgReadRequests,
		contractStorageUpdateRequests,
		contractStorageReads,
		publicCallRequests,
		noteHashes,
		nullifiers,
		l2ToL1Msgs,
		startSideEffectCounter,
		endSideEffectCounter,
		publicLogs,
		historicalHeader,
		globalVariables,
		proverAddress,
		revertCode,
		startGasLeft,
		endGasLeft,
		transactionFee,
	}
}

// From constructs a record from a map of declared field names to values.  Every
// declared field must be present, and no others.  Fixed-capacity arrays can be
// given as slices holding at most their capacity, in which case the remaining
// slots are empty.
func From(fields map[string]any) (PublicCircuitPublicInputs, error) {
	var record PublicCircuitPublicInputs
	//
	if err := record.Members().Assign(fields); err != nil {
		return PublicCircuitPublicInputs{}, err
	}
	//
	return record, nil
}

// Empty returns the empty record, where every scalar is zero and every array
// slot holds its element's empty value.
func Empty() PublicCircuitPublicInputs {
	return PublicCircuitPublicInputs{}
}

// FromBuffer decodes a record from its byte encoding.  Trailing bytes are not
// checked.
func FromBuffer(bytes []byte) (PublicCircuitPublicInputs, error) {
	return ReadFromBuffer(serialize.NewBufferReader(bytes))
}

// ReadFromBuffer decodes a record from a byte cursor.
func ReadFromBuffer(reader *serialize.BufferReader) (PublicCircuitPublicInputs, error) {
	var record PublicCircuitPublicInputs
	//
	if err := record.Members().FromBuffer(reader); err != nil {
		return PublicCircuitPublicInputs{}, err
	}
	//
	return record, nil
}

// FromFields decodes a record from its field encoding.  Trailing fields are not
// checked.
func FromFields(fields []field.Element) (PublicCircuitPublicInputs, error) {
	return ReadFromFields(serialize.NewFieldReader(fields))
}

// ReadFromFields decodes a record from a field cursor.
func ReadFromFields(reader *serialize.FieldReader) (PublicCircuitPublicInputs, error) {
	var record PublicCircuitPublicInputs
	//
	if err := record.Members().FromFields(reader); err != nil {
		return PublicCircuitPublicInputs{}, err
	}
	//
	return record, nil
}

// Members returns the ordered field declaration of this record, bound to its
// storage.  This is the one place where the order of fields is defined; every
// other operation is derived from it.
func (p *PublicCircuitPublicInputs) Members() serialize.Members {
	return serialize.Members{
		serialize.Object("callContext", &p.CallContext),
		serialize.Scalar("argsHash", &p.ArgsHash),
		serialize.Scalar("returnsHash", &p.ReturnsHash),
		serialize.Array("noteHashReadRequests", p.NoteHashReadRequests[:]),
		serialize.Array("nullifierReadRequests", p.NullifierReadRequests[:]),
		serialize.Array("nullifierNonExistentReadRequests", p.NullifierNonExistentReadRequests[:]),
		serialize.Array("l1ToL2MsgReadRequests", p.L1ToL2MsgReadRequests[:]),
		serialize.Array("contractStorageUpdateRequests", p.ContractStorageUpdateRequests[:]),
		serialize.Array("contractStorageReads", p.ContractStorageReads[:]),
		serialize.Array("publicCallRequests", p.PublicCallRequests[:]),
		serialize.Array("noteHashes", p.NoteHashes[:]),
		serialize.Array("nullifiers", p.Nullifiers[:]),
		serialize.Array("l2ToL1Msgs", p.L2ToL1Msgs[:]),
		serialize.Scalar("startSideEffectCounter", &p.StartSideEffectCounter),
		serialize.Scalar("endSideEffectCounter", &p.EndSideEffectCounter),
		serialize.Array("publicLogs", p.PublicLogs[:]),
		serialize.Object("historicalHeader", &p.HistoricalHeader),
		serialize.Object("globalVariables", &p.GlobalVariables),
		serialize.Object("proverAddress", &p.ProverAddress),
		serialize.Object("revertCode", &p.RevertCode),
		serialize.Object("startGasLeft", &p.StartGasLeft),
		serialize.Object("endGasLeft", &p.EndGasLeft),
		serialize.Scalar("transactionFee", &p.TransactionFee),
	}
}

// IsEmpty holds iff every field of this record is empty.
func (p PublicCircuitPublicInputs) IsEmpty() bool {
	return p.Members().IsEmpty()
}

// Equals determines whether two records hold the same values.
func (p PublicCircuitPublicInputs) Equals(other PublicCircuitPublicInputs) bool {
	return p == other
}

// ToBuffer returns the byte encoding of this record.
func (p PublicCircuitPublicInputs) ToBuffer() []byte {
	return p.Members().ToBuffer()
}

// ToFields returns the field encoding of this record, whose length is always
// PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH.  An error is returned if the declared
// fields disagree with that length, or if some field holds a value which could
// not be decoded again (e.g. an undefined revert code).
func (p PublicCircuitPublicInputs) ToFields() ([]field.Element, error) {
	var (
		members = p.Members()
		writer  = serialize.NewFieldWriter(PUBLIC_CIRCUIT_PUBLIC_INPUTS, constants.PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH)
	)
	//
	if err := members.Validate(); err != nil {
		return nil, err
	}
	//
	return members.WriteTo(writer).Fields()
}

// Layout returns the position of every declared field within both encodings.
func (p PublicCircuitPublicInputs) Layout() []serialize.Slot {
	return p.Members().Layout()
}

// String returns a human-readable rendering, in which arrays show only their
// non-empty elements.
func (p PublicCircuitPublicInputs) String() string {
	return p.Members().Pretty(PUBLIC_CIRCUIT_PUBLIC_INPUTS)
}
