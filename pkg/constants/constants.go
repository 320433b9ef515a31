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

// Package constants holds the protocol constants shared with the circuits: the
// capacity of every per-call array and the field length of every structure.
// These must agree with the circuit definitions and are not derived here.
package constants

// Per-call capacities.
const (
	MAX_NOTE_HASH_READ_REQUESTS_PER_CALL              = 16
	MAX_NULLIFIER_READ_REQUESTS_PER_CALL              = 16
	MAX_NULLIFIER_NON_EXISTENT_READ_REQUESTS_PER_CALL = 16
	MAX_L1_TO_L2_MSG_READ_REQUESTS_PER_CALL           = 16
	MAX_PUBLIC_DATA_UPDATE_REQUESTS_PER_CALL          = 64
	MAX_PUBLIC_DATA_READS_PER_CALL                    = 64
	MAX_ENQUEUED_CALLS_PER_CALL                       = 16
	MAX_NOTE_HASHES_PER_CALL                          = 16
	MAX_NULLIFIERS_PER_CALL                           = 16
	MAX_L2_TO_L1_MSGS_PER_CALL                        = 2
	MAX_PUBLIC_LOGS_PER_CALL                          = 4
	PUBLIC_LOG_DATA_SIZE_IN_FIELDS                    = 13
)

// Structure lengths, in fields.
const (
	AZTEC_ADDRESS_LENGTH                   = 1
	ETH_ADDRESS_LENGTH                     = 1
	FUNCTION_SELECTOR_LENGTH               = 1
	REVERT_CODE_LENGTH                     = 1
	CALL_CONTEXT_LENGTH                    = 4
	READ_REQUEST_LENGTH                    = 2
	TREE_LEAF_READ_REQUEST_LENGTH          = 2
	CONTRACT_STORAGE_UPDATE_REQUEST_LENGTH = 3
	CONTRACT_STORAGE_READ_LENGTH           = 3
	PUBLIC_INNER_CALL_REQUEST_LENGTH       = 6
	NOTE_HASH_LENGTH                       = 2
	NULLIFIER_LENGTH                       = 3
	L2_TO_L1_MESSAGE_LENGTH                = 3
	PUBLIC_LOG_LENGTH                      = 14
	GAS_LENGTH                             = 2
	GAS_FEES_LENGTH                        = 2
	APPEND_ONLY_TREE_SNAPSHOT_LENGTH       = 2
	CONTENT_COMMITMENT_LENGTH              = 4
	PARTIAL_STATE_REFERENCE_LENGTH         = 6
	STATE_REFERENCE_LENGTH                 = 8
	GLOBAL_VARIABLES_LENGTH                = 9
	BLOCK_HEADER_LENGTH                    = 25
	PUBLIC_CIRCUIT_PUBLIC_INPUTS_LENGTH    = 799
)
