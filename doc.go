// Intercept native functions in a running process
//
// A Hook names a symbol in the host process and supplies a replacement. When
// the hook is attached the first instructions of the host function are moved
// into a trampoline and overwritten with a jump to the replacement's native
// entry point. The relocated trampoline is the "original": it runs the moved
// instructions and continues in the untouched remainder of the host function.
//
// The replacement only sees the original as the argument to Hook.Replace. It
// may call it, transform its arguments or results, or never call it at all.
//
// Limitations:
//   - The inline patcher only supports linux/amd64
//   - Hooks can't be removed once attached
//   - Prologues containing short or conditional branches can't be moved
//   - Nothing checks that a hook's signature matches the host function
package interpose
