// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountAlreadyExists      = ExistsError("account already exists")
	AccountNotFound           = NotFoundError("account not found")
	AddressDerivationFailure  = ProcessError("no valid nonce for derived address")
	AddressMismatch           = InvalidError("derived address does not match")
	AllocationTooLarge        = LengthError("allocation too large")
	AlreadyInitialised        = ExistsError("already initialised")
	ArithmeticOverflow        = ProcessError("arithmetic overflow")
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CannotDecodeSeed          = InvalidError("cannot decode seed")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	ChunkTooLarge             = LengthError("chunk exceeds session chunk limit")
	ConfigurationFileNotFound = NotFoundError("configuration file not found")
	CountTooLarge             = LengthError("count too large")
	CryptoFailed              = ProcessError("crypto failed")
	DataRecordNotAllocated    = NotFoundError("data record is not allocated")
	DataRecordNotZeroed       = InvalidError("data record is not zeroed")
	DuplicateSession          = ExistsError("session already exists")
	DuplicateEnvelope         = ExistsError("envelope already processed")
	DuplicateSigner           = InvalidError("duplicate signer")
	EmptyEnvelope             = InvalidError("envelope has no instructions")
	EnvelopeTooLarge          = LengthError("envelope too large")
	ExceedsDeclaredTotal      = LengthError("chunk exceeds declared total")
	IdentityNameAlreadyExists = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	IncompatibleOptions       = InvalidError("incompatible options")
	InvalidCapacity           = InvalidError("invalid capacity")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidIPAddress          = InvalidError("invalid IP address")
	InvalidItem               = InvalidError("invalid item")
	InvalidKeyLength          = InvalidError("invalid key length")
	InvalidPasswordLength     = InvalidError("invalid password length")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKey         = InvalidError("invalid private key")
	InvalidSeedHeader         = InvalidError("invalid seed header")
	InvalidSeedLength         = InvalidError("invalid seed length")
	InvalidSeeds              = InvalidError("invalid derivation seeds")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	MissingSignature          = AuthorisationError("missing signature")
	NotEnvelope               = RecordError("not an envelope")
	NotImplemented            = ProcessError("not implemented")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = InvalidError("not a private key")
	OutOfBounds               = LengthError("write out of bounds")
	PasswordMismatch          = InvalidError("password mismatch")
	RateLimiting              = InvalidError("rate limiting")
	ReadOutOfRange            = LengthError("read out of range")
	RecordTooShort            = RecordError("record too short")
	SessionNotFound           = NotFoundError("session not found")
	SystemNotRunning          = ProcessError("system is not running")
	TrailingData              = RecordError("unexpected trailing data")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	UnauthorisedSigner        = AuthorisationError("unauthorised signer")
	UnknownInstruction        = RecordError("unknown instruction")
	WrongDataRecordSize       = LengthError("wrong data record size")
	WrongDiscriminator        = RecordError("wrong record discriminator")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
