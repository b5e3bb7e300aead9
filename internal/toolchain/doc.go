// Package toolchain runs the build tools that produce the daemon artifact.
//
// The launcher drives two cargo invocations: a formatting pass over the
// source tree and a release build of the full workspace. Both run as host
// subprocesses with stdio inherited, so the tools' own progress and error
// output reach the operator directly. A failing tool aborts the launch; its
// exit status is surfaced unchanged through the returned error.
package toolchain
