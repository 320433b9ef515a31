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
	"encoding/binary"

	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
)

// The factories below build deterministic, fully populated values from a seed.
// Every scalar is derived from the seed (plus a fixed offset), hence distinct
// seeds give distinct values, and no slot of any array is left empty.  They are
// intended for testing and for generating sample records.

func fr(seed uint64) field.Element {
	return field.Uint64(seed)
}

func u32(seed uint64) uint32 {
	return uint32(seed)
}

// MakeAztecAddress builds an address from a seed.
func MakeAztecAddress(seed uint64) AztecAddress {
	return AztecAddress{fr(seed)}
}

// MakeEthAddress builds an L1 address from a seed.
func MakeEthAddress(seed uint64) EthAddress {
	var addr EthAddress
	//
	binary.BigEndian.PutUint64(addr[ETH_ADDRESS_BYTES-8:], seed)
	//
	return addr
}

// MakeCallContext builds a call context from a seed.
func MakeCallContext(seed uint64) CallContext {
	return CallContext{
		MsgSender:        MakeAztecAddress(seed),
		ContractAddress:  MakeAztecAddress(seed + 1),
		FunctionSelector: FunctionSelector(u32(seed + 2)),
		IsStaticCall:     seed%2 == 1,
	}
}

// MakeReadRequest builds a read request from a seed.
func MakeReadRequest(seed uint64) ReadRequest {
	return ReadRequest{fr(seed), u32(seed + 1)}
}

// MakeTreeLeafReadRequest builds a tree leaf read request from a seed.
func MakeTreeLeafReadRequest(seed uint64) TreeLeafReadRequest {
	return TreeLeafReadRequest{fr(seed), fr(seed + 1)}
}

// MakeContractStorageUpdateRequest builds a storage write from a seed.
func MakeContractStorageUpdateRequest(seed uint64) ContractStorageUpdateRequest {
	return ContractStorageUpdateRequest{fr(seed), fr(seed + 1), u32(seed + 2)}
}

// MakeContractStorageRead builds a storage read from a seed.
func MakeContractStorageRead(seed uint64) ContractStorageRead {
	return ContractStorageRead{fr(seed), fr(seed + 1), u32(seed + 2)}
}

// MakePublicInnerCallRequest builds a call request from a seed.
func MakePublicInnerCallRequest(seed uint64) PublicInnerCallRequest {
	return PublicInnerCallRequest{MakeCallContext(seed), fr(seed + 0x10), u32(seed + 0x11)}
}

// MakeNoteHash builds a note hash from a seed.
func MakeNoteHash(seed uint64) NoteHash {
	return NoteHash{fr(seed), u32(seed + 1)}
}

// MakeNullifier builds a nullifier from a seed.
func MakeNullifier(seed uint64) Nullifier {
	return Nullifier{fr(seed), u32(seed + 1), fr(seed + 2)}
}

// MakeL2ToL1Message builds a message from a seed.
func MakeL2ToL1Message(seed uint64) L2ToL1Message {
	return L2ToL1Message{MakeEthAddress(seed), fr(seed + 1), u32(seed + 2)}
}

// MakePublicLog builds a log from a seed.
func MakePublicLog(seed uint64) PublicLog {
	var log = PublicLog{ContractAddress: MakeAztecAddress(seed)}
	//
	serialize.MakeTuple(log.Log[:], func(i int) field.Element { return fr(seed + 1 + uint64(i)) })
	//
	return log
}

// MakeGas builds a gas amount from a seed.
func MakeGas(seed uint64) Gas {
	return Gas{u32(seed), u32(seed + 1)}
}

// MakeGasFees builds gas fees from a seed.
func MakeGasFees(seed uint64) GasFees {
	return GasFees{fr(seed), fr(seed + 1)}
}

// MakeAppendOnlyTreeSnapshot builds a tree snapshot from a seed.
func MakeAppendOnlyTreeSnapshot(seed uint64) AppendOnlyTreeSnapshot {
	return AppendOnlyTreeSnapshot{fr(seed), u32(seed + 1)}
}

// MakeGlobalVariables builds global variables from a seed.
func MakeGlobalVariables(seed uint64) GlobalVariables {
	return GlobalVariables{
		ChainId:      fr(seed),
		Version:      fr(seed + 1),
		BlockNumber:  fr(seed + 2),
		SlotNumber:   fr(seed + 3),
		Timestamp:    fr(seed + 4),
		Coinbase:     MakeEthAddress(seed + 5),
		FeeRecipient: MakeAztecAddress(seed + 6),
		GasFees:      MakeGasFees(seed + 7),
	}
}

// MakeBlockHeader builds a block header from a seed.
func MakeBlockHeader(seed uint64) BlockHeader {
	return BlockHeader{
		LastArchive:       MakeAppendOnlyTreeSnapshot(seed),
		ContentCommitment: ContentCommitment{fr(seed + 0x200), fr(seed + 0x201), fr(seed + 0x202), fr(seed + 0x203)},
		State: StateReference{
			L1ToL2MessageTree: MakeAppendOnlyTreeSnapshot(seed + 0x300),
			Partial: PartialStateReference{
				NoteHashTree:   MakeAppendOnlyTreeSnapshot(seed + 0x400),
				NullifierTree:  MakeAppendOnlyTreeSnapshot(seed + 0x500),
				PublicDataTree: MakeAppendOnlyTreeSnapshot(seed + 0x600),
			},
		},
		GlobalVariables: MakeGlobalVariables(seed + 0x700),
		TotalFees:       fr(seed + 0x800),
		TotalManaUsed:   fr(seed + 0x900),
	}
}

// MakePublicCircuitPublicInputs builds a record, with every array filled to
// capacity, from a seed.
func MakePublicCircuitPublicInputs(seed uint64) PublicCircuitPublicInputs {
	var p PublicCircuitPublicInputs
	//
	p.CallContext = MakeCallContext(seed)
	p.ArgsHash = fr(seed + 0x100)
	p.ReturnsHash = fr(seed + 0x200)
	serialize.MakeTuple(p.NoteHashReadRequests[:], func(i int) TreeLeafReadRequest {
		return MakeTreeLeafReadRequest(seed + 0x300 + uint64(i))
	})
	serialize.MakeTuple(p.NullifierReadRequests[:], func(i int) ReadRequest {
		return MakeReadRequest(seed + 0x400 + uint64(i))
	})
	serialize.MakeTuple(p.NullifierNonExistentReadRequests[:], func(i int) ReadRequest {
		return MakeReadRequest(seed + 0x500 + uint64(i))
	})
	serialize.MakeTuple(p.L1ToL2MsgReadRequests[:], func(i int) TreeLeafReadRequest {
		return MakeTreeLeafReadRequest(seed + 0x600 + uint64(i))
	})
	serialize.MakeTuple(p.ContractStorageUpdateRequests[:], func(i int) ContractStorageUpdateRequest {
		return MakeContractStorageUpdateRequest(seed + 0x700 + uint64(i))
	})
	serialize.MakeTuple(p.ContractStorageReads[:], func(i int) ContractStorageRead {
		return MakeContractStorageRead(seed + 0x800 + uint64(i))
	})
	serialize.MakeTuple(p.PublicCallRequests[:], func(i int) PublicInnerCallRequest {
		return MakePublicInnerCallRequest(seed + 0x900 + uint64(i))
	})
	serialize.MakeTuple(p.NoteHashes[:], func(i int) NoteHash {
		return MakeNoteHash(seed + 0xa00 + uint64(i))
	})
	serialize.MakeTuple(p.Nullifiers[:], func(i int) Nullifier {
		return MakeNullifier(seed + 0xb00 + uint64(i))
	})
	serialize.MakeTuple(p.L2ToL1Msgs[:], func(i int) L2ToL1Message {
		return MakeL2ToL1Message(seed + 0xc00 + uint64(i))
	})
	p.StartSideEffectCounter = fr(seed + 0xd00)
	p.EndSideEffectCounter = fr(seed + 0xe00)
	serialize.MakeTuple(p.PublicLogs[:], func(i int) PublicLog {
		return MakePublicLog(seed + 0xf00 + uint64(i)*0x10)
	})
	p.HistoricalHeader = MakeBlockHeader(seed + 0xd000)
	p.GlobalVariables = MakeGlobalVariables(seed + 0xe000)
	p.ProverAddress = MakeAztecAddress(seed + 0xf000)
	p.RevertCode = REVERT_CODE_APP_LOGIC_REVERTED
	p.StartGasLeft = MakeGas(seed + 0x1100)
	p.EndGasLeft = MakeGas(seed + 0x1200)
	p.TransactionFee = fr(seed + 0x1300)
	//
	return p
}
